package commands

import (
	"context"
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"
	"amsral/internal/core/domain/services"
	"amsral/internal/pkg/errs"
)

// AddOrderRecordCommandHandler adds production records to orders, allocating
// each record's tracking number from the order's current snapshot.
//
// Concurrent intake on the same order can race on the same free letter. The
// database enforces a unique (order_id, tracking_number) constraint; when the
// commit loses that race the handler reloads the order and retries the
// allocation once.
type AddOrderRecordCommandHandler struct {
	uowFactory OrderUoWFactory
	allocator  services.TrackingAllocator
}

// NewAddOrderRecordCommandHandler creates a handler for record intake.
func NewAddOrderRecordCommandHandler(
	uowFactory OrderUoWFactory,
	allocator services.TrackingAllocator,
) AddOrderRecordCommandHandler {
	return AddOrderRecordCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle processes the record intake command and returns the tracking number
// assigned to the new record.
func (h *AddOrderRecordCommandHandler) Handle(ctx context.Context, cmd AddOrderRecordCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	trackingNumber, err := h.addRecord(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		// Lost the allocation race; the reload sees the winner's record.
		trackingNumber, err = h.addRecord(ctx, cmd)
	}
	if err != nil {
		return "", err
	}

	return trackingNumber, nil
}

func (h *AddOrderRecordCommandHandler) addRecord(ctx context.Context, cmd AddOrderRecordCommand) (string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	trackingNumber, err := h.allocator.AllocateNext(aggregate.ID(), aggregate.Records())
	if err != nil {
		return "", err
	}

	record, err := order.NewRecord(kernel.NewUUID(), trackingNumber, cmd.Quantity(), cmd.WashType())
	if err != nil {
		return "", err
	}

	if err = aggregate.AddRecord(record); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return trackingNumber.String(), nil
}
