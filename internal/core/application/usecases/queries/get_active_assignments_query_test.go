package queries_test

import (
	"testing"

	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveAssignmentsQuery_Valid(t *testing.T) {
	tenantID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	query, err := queries.NewGetActiveAssignmentsQuery(tenantID, driverID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, tenantID, query.TenantID())
	assert.Equal(t, driverID, query.DriverID())
}

func TestNewGetActiveAssignmentsQuery_EmptyTenant(t *testing.T) {
	_, err := queries.NewGetActiveAssignmentsQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewGetActiveAssignmentsQuery_EmptyDriver(t *testing.T) {
	_, err := queries.NewGetActiveAssignmentsQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetActiveAssignmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveAssignmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveAssignmentsQueryIsNotConstructed)
}
