// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances.
package postgres

import (
	"context"

	"amsral/internal/adapters/out/postgres/customerrepo"
	"amsral/internal/adapters/out/postgres/invoicerepo"
	"amsral/internal/adapters/out/postgres/orderrepo"
	"amsral/internal/adapters/out/postgres/userrepo"
	"amsral/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        any
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CustomerRepository provides access to customer persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// OrderRepository provides access to order persistence operations within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// UserRepository provides access to account persistence operations within the unit of work.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// InvoiceRepository provides access to invoice persistence operations within the unit of work.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added, updated, or otherwise modified.
func (uow *GormUnitOfWork) TrackAggregate(id any, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the active transaction, or the main connection when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
