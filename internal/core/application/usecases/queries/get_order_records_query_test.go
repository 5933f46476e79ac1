package queries_test

import (
	"testing"

	"amsral/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderRecordsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderRecordsQuery(42)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(42), query.OrderID())
}

func TestNewGetOrderRecordsQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderRecordsQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)

	_, err = queries.NewGetOrderRecordsQuery(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)
}

func TestGetOrderRecordsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderRecordsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderRecordsQueryIsNotConstructed)
}
