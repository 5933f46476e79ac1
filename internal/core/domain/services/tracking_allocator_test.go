package services_test

import (
	"fmt"
	"testing"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"
	"amsral/internal/core/domain/services"
	"amsral/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(t *testing.T, trackingNumber string) *order.Record {
	t.Helper()

	tn, err := kernel.ParseTrackingNumber(trackingNumber)
	require.NoError(t, err)

	record, err := order.NewRecord(kernel.NewUUID(), tn, 5, order.WashNormal)
	require.NoError(t, err)
	return record
}

func makeRecords(t *testing.T, trackingNumbers ...string) []*order.Record {
	t.Helper()

	records := make([]*order.Record, 0, len(trackingNumbers))
	for _, tn := range trackingNumbers {
		records = append(records, makeRecord(t, tn))
	}
	return records
}

func TestTrackingAllocator_AllocateNext(t *testing.T) {
	allocator := services.NewTrackingAllocator()

	t.Run("empty snapshot allocates A", func(t *testing.T) {
		tn, err := allocator.AllocateNext(6, nil)

		require.NoError(t, err)
		assert.Equal(t, "6A", tn.String())
	})

	t.Run("allocates next letter after used ones", func(t *testing.T) {
		records := makeRecords(t, "6A", "6B")

		tn, err := allocator.AllocateNext(6, records)

		require.NoError(t, err)
		assert.Equal(t, "6C", tn.String())
	})

	t.Run("fills gaps instead of skipping ahead", func(t *testing.T) {
		records := makeRecords(t, "6A", "6C")

		tn, err := allocator.AllocateNext(6, records)

		require.NoError(t, err)
		assert.Equal(t, "6B", tn.String())
	})

	t.Run("other orders never influence allocation", func(t *testing.T) {
		records := makeRecords(t, "60A", "65B")

		tn, err := allocator.AllocateNext(6, records)

		require.NoError(t, err)
		assert.Equal(t, "6A", tn.String())
	})

	t.Run("digit prefix collision does not block the shorter order id", func(t *testing.T) {
		// Order 60 already has A; order 6 must still get A.
		records := makeRecords(t, "60A", "60B", "600C")

		tn, err := allocator.AllocateNext(6, records)

		require.NoError(t, err)
		assert.Equal(t, "6A", tn.String())

		// And the other direction: order 6's records do not block order 60.
		tn, err = allocator.AllocateNext(60, makeRecords(t, "6A", "6B"))
		require.NoError(t, err)
		assert.Equal(t, "60A", tn.String())
	})

	t.Run("records without tracking numbers are ignored", func(t *testing.T) {
		allocated := makeRecord(t, "6A")
		restored, err := order.RestoreRecord(
			kernel.NewUUID(), nil, 3, order.WashHeavy, nil, "", "", 0, order.RecordPending)
		require.NoError(t, err)

		tn, err := allocator.AllocateNext(6, []*order.Record{allocated, restored, nil})

		require.NoError(t, err)
		assert.Equal(t, "6B", tn.String())
	})

	t.Run("is deterministic over a fixed snapshot", func(t *testing.T) {
		records := makeRecords(t, "6A", "6D")

		first, err := allocator.AllocateNext(6, records)
		require.NoError(t, err)

		for range 10 {
			next, nextErr := allocator.AllocateNext(6, records)
			require.NoError(t, nextErr)
			assert.Equal(t, first.String(), next.String())
		}
	})

	t.Run("never returns a tracking number already in the snapshot", func(t *testing.T) {
		records := make([]*order.Record, 0, 25)
		for letter := byte('A'); letter < 'Z'; letter++ {
			records = append(records, makeRecord(t, fmt.Sprintf("6%c", letter)))

			tn, err := allocator.AllocateNext(6, records)
			require.NoError(t, err)
			assert.False(t, allocator.IsInUse(tn.String(), records))
		}
	})

	t.Run("exhausts after all 26 letters are used", func(t *testing.T) {
		records := make([]*order.Record, 0, 26)
		for letter := byte('A'); letter <= 'Z'; letter++ {
			records = append(records, makeRecord(t, fmt.Sprintf("6%c", letter)))
		}

		_, err := allocator.AllocateNext(6, records)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrTrackingNumbersExhausted)
	})

	t.Run("rejects non-positive order ids", func(t *testing.T) {
		for _, orderID := range []int64{0, -6} {
			_, err := allocator.AllocateNext(orderID, nil)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestTrackingAllocator_ListForOrder(t *testing.T) {
	allocator := services.NewTrackingAllocator()

	t.Run("returns the order's tracking numbers in snapshot order", func(t *testing.T) {
		records := makeRecords(t, "6C", "60A", "6A", "65B", "6B")

		result := allocator.ListForOrder(6, records)

		assert.Equal(t, []string{"6C", "6A", "6B"}, result)
	})

	t.Run("returns empty slice when the order has no records", func(t *testing.T) {
		records := makeRecords(t, "60A", "65B")

		result := allocator.ListForOrder(6, records)

		assert.Empty(t, result)
	})
}

func TestTrackingAllocator_IsInUse(t *testing.T) {
	allocator := services.NewTrackingAllocator()
	records := makeRecords(t, "6A", "60B")

	t.Run("finds exact matches", func(t *testing.T) {
		assert.True(t, allocator.IsInUse("6A", records))
		assert.True(t, allocator.IsInUse("60B", records))
	})

	t.Run("equality is exact string match only", func(t *testing.T) {
		assert.False(t, allocator.IsInUse("6a", records))
		assert.False(t, allocator.IsInUse("6B", records))
		assert.False(t, allocator.IsInUse(" 6A", records))
		assert.False(t, allocator.IsInUse("", records))
	})
}
