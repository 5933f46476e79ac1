package order_test

import (
	"testing"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"
	"amsral/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTrackingNumber(t *testing.T, s string) kernel.TrackingNumber {
	t.Helper()

	tn, err := kernel.ParseTrackingNumber(s)
	require.NoError(t, err)
	return tn
}

func TestNewRecord(t *testing.T) {
	validID := kernel.NewUUID()
	validTracking := mustTrackingNumber(t, "6A")

	t.Run("should create valid record with all valid parameters", func(t *testing.T) {
		r, err := order.NewRecord(validID, validTracking, 10, order.WashNormal)

		require.NoError(t, err)
		assert.NotNil(t, r)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(validID))
		require.NotNil(t, r.TrackingNumber())
		assert.Equal(t, "6A", r.TrackingNumber().String())
		assert.Equal(t, 10, r.Quantity())
		assert.Equal(t, order.WashNormal, r.WashType())
		assert.Equal(t, order.RecordPending, r.Status())
		assert.Empty(t, r.WashingMachine())
		assert.Empty(t, r.DryingMachine())
		assert.Equal(t, 0, r.DeliveredQuantity())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := order.NewRecord(invalidID, validTracking, 10, order.WashNormal)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unconstructed tracking number", func(t *testing.T) {
		var invalidTracking kernel.TrackingNumber

		r, err := order.NewRecord(validID, invalidTracking, 10, order.WashNormal)

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -5} {
			r, err := order.NewRecord(validID, validTracking, quantity, order.WashNormal)

			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})

	t.Run("should fail with unsupported wash type", func(t *testing.T) {
		r, err := order.NewRecord(validID, validTracking, 10, order.WashType("Boil"))

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "wash type is invalid")
	})
}

func TestRestoreRecord(t *testing.T) {
	validID := kernel.NewUUID()
	tracking := mustTrackingNumber(t, "6B")

	t.Run("should restore record with full state", func(t *testing.T) {
		r, err := order.RestoreRecord(
			validID, &tracking, 10, order.WashHeavy,
			[]string{"Press", "Fold"}, "W1", "D2", 8, order.RecordCompleted)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "6B", r.TrackingNumber().String())
		assert.Equal(t, []string{"Press", "Fold"}, r.ProcessTypes())
		assert.Equal(t, "W1", r.WashingMachine())
		assert.Equal(t, "D2", r.DryingMachine())
		assert.Equal(t, 8, r.DeliveredQuantity())
		assert.Equal(t, 2, r.ReturnQuantity())
		assert.Equal(t, order.RecordCompleted, r.Status())
	})

	t.Run("should restore record without tracking number", func(t *testing.T) {
		r, err := order.RestoreRecord(
			validID, nil, 3, order.WashNormal, nil, "", "", 0, order.RecordPending)

		require.NoError(t, err)
		assert.Nil(t, r.TrackingNumber())
	})

	t.Run("should fail with invalid record status", func(t *testing.T) {
		r, err := order.RestoreRecord(
			validID, &tracking, 3, order.WashNormal, nil, "", "", 0, order.RecordUnknown)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "record status is invalid")
	})

	t.Run("should fail when delivered quantity exceeds quantity", func(t *testing.T) {
		r, err := order.RestoreRecord(
			validID, &tracking, 3, order.WashNormal, nil, "W1", "", 4, order.RecordCompleted)

		require.Error(t, err)
		assert.Nil(t, r)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("should fail validation for nil record", func(t *testing.T) {
		var r *order.Record

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrRecordIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value record", func(t *testing.T) {
		var r order.Record

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrRecordIsNotConstructed, err)
	})
}

func TestRecord_AssignProcessing(t *testing.T) {
	newRecord := func(t *testing.T) *order.Record {
		t.Helper()
		r, err := order.NewRecord(kernel.NewUUID(), mustTrackingNumber(t, "6A"), 10, order.WashNormal)
		require.NoError(t, err)
		return r
	}

	t.Run("should assign machines and move to InProcess", func(t *testing.T) {
		r := newRecord(t)

		err := r.AssignProcessing([]string{"Press"}, "W1", "D1")

		require.NoError(t, err)
		assert.Equal(t, order.RecordInProcess, r.Status())
		assert.Equal(t, []string{"Press"}, r.ProcessTypes())
		assert.Equal(t, "W1", r.WashingMachine())
		assert.Equal(t, "D1", r.DryingMachine())
	})

	t.Run("should allow skipping the dryer", func(t *testing.T) {
		r := newRecord(t)

		err := r.AssignProcessing(nil, "W1", "")

		require.NoError(t, err)
		assert.Empty(t, r.DryingMachine())
	})

	t.Run("should require a washing machine", func(t *testing.T) {
		r := newRecord(t)

		err := r.AssignProcessing(nil, "", "D1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.RecordPending, r.Status())
	})

	t.Run("should reject double assignment", func(t *testing.T) {
		r := newRecord(t)
		require.NoError(t, r.AssignProcessing(nil, "W1", ""))

		err := r.AssignProcessing(nil, "W2", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "InProcess is not a valid record status to start processing")
		assert.Equal(t, "W1", r.WashingMachine())
	})
}

func TestRecord_Complete(t *testing.T) {
	processedRecord := func(t *testing.T) *order.Record {
		t.Helper()
		r, err := order.NewRecord(kernel.NewUUID(), mustTrackingNumber(t, "6A"), 10, order.WashNormal)
		require.NoError(t, err)
		require.NoError(t, r.AssignProcessing(nil, "W1", "D1"))
		return r
	}

	t.Run("should complete with full delivered quantity", func(t *testing.T) {
		r := processedRecord(t)

		err := r.Complete(10)

		require.NoError(t, err)
		assert.Equal(t, order.RecordCompleted, r.Status())
		assert.Equal(t, 10, r.DeliveredQuantity())
		assert.Equal(t, 0, r.ReturnQuantity())
	})

	t.Run("should derive the return quantity from a partial delivery", func(t *testing.T) {
		r := processedRecord(t)

		err := r.Complete(7)

		require.NoError(t, err)
		assert.Equal(t, 7, r.DeliveredQuantity())
		assert.Equal(t, 3, r.ReturnQuantity())
	})

	t.Run("should reject delivered quantity outside the batch", func(t *testing.T) {
		for _, deliveredQuantity := range []int{-1, 11} {
			r := processedRecord(t)

			err := r.Complete(deliveredQuantity)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Equal(t, order.RecordInProcess, r.Status())
		}
	})

	t.Run("should reject completing a pending record", func(t *testing.T) {
		r, err := order.NewRecord(kernel.NewUUID(), mustTrackingNumber(t, "6A"), 10, order.WashNormal)
		require.NoError(t, err)

		err = r.Complete(10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Pending is not a valid record status to complete")
	})
}

func TestRecord_Deliver(t *testing.T) {
	t.Run("should deliver a completed record", func(t *testing.T) {
		r, err := order.NewRecord(kernel.NewUUID(), mustTrackingNumber(t, "6A"), 10, order.WashNormal)
		require.NoError(t, err)
		require.NoError(t, r.AssignProcessing(nil, "W1", ""))
		require.NoError(t, r.Complete(10))

		err = r.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.RecordDelivered, r.Status())
	})

	t.Run("should reject delivering an unfinished record", func(t *testing.T) {
		r, err := order.NewRecord(kernel.NewUUID(), mustTrackingNumber(t, "6A"), 10, order.WashNormal)
		require.NoError(t, err)

		err = r.Deliver()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Pending is not a valid record status to deliver")
	})
}
