package queries_test

import (
	"testing"

	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStatusSummaryQuery_Valid(t *testing.T) {
	tenantID := kernel.NewUUID()

	query, err := queries.NewGetStatusSummaryQuery(tenantID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, tenantID, query.TenantID())
	assert.False(t, query.AllTenants())
}

func TestNewGetStatusSummaryQuery_EmptyTenant(t *testing.T) {
	_, err := queries.NewGetStatusSummaryQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetStatusSummaryQueryAllTenants_Valid(t *testing.T) {
	query := queries.NewGetStatusSummaryQueryAllTenants()
	require.NoError(t, query.Validate())
	assert.True(t, query.AllTenants())
}

func TestGetStatusSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStatusSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStatusSummaryQueryIsNotConstructed)
}
