package queries_test

import (
	"testing"

	"canteen/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQueueStatusQuery_Valid(t *testing.T) {
	query := queries.NewGetQueueStatusQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetQueueStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQueueStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQueueStatusQueryIsNotConstructed)
}

func TestNewGetKitchenQueueQuery_Valid(t *testing.T) {
	query := queries.NewGetKitchenQueueQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetKitchenQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetKitchenQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetKitchenQueueQueryIsNotConstructed)
}

func TestNewGetMenuQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetMenuQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMenuQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}

func TestNewGetDailySummaryQuery_Valid(t *testing.T) {
	query := queries.NewGetDailySummaryQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetDailySummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDailySummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDailySummaryQueryIsNotConstructed)
}
