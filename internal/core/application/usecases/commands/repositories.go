// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"amsral/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the workflow commands that modify a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UserUoW manages transactions for account administration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// IntakeUoW manages transactions that open orders for customers.
	// Order creation verifies the customer before persisting the order.
	IntakeUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// BillingUoW manages transactions that turn delivered orders into invoices.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	orderRepo := uow.OrderRepository()
	//	invoiceRepo := uow.InvoiceRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	BillingUoW interface {
		TxManager
		OrderRepoFactory
		InvoiceRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
