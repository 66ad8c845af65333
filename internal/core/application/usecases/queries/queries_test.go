package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPickListQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPickListQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetPickListQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetPickListQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPickListQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPickListQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPickListQueryIsNotConstructed)
}

func TestNewGetCombinedPickingQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCombinedPickingQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.PickListIDs())
}

func TestNewGetCombinedPickingQuery_ScopedToLists(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	query, err := queries.NewGetCombinedPickingQuery(ids)
	require.NoError(t, err)
	assert.Equal(t, ids, query.PickListIDs())
}

func TestNewGetCombinedPickingQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetCombinedPickingQuery([]kernel.UUID{{}})
	require.Error(t, err)
}

func TestGetCombinedPickingQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCombinedPickingQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCombinedPickingQueryIsNotConstructed)
}

func TestNewGetLoadQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLoadQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetLoadQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLoadQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLoadQueryIsNotConstructed)
}
