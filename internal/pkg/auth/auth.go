// Package auth provides explicit tenant-scope and permission guards for the
// exposed operations. Authentication itself happens upstream; this package
// only models the identity context that layer resolves and the checks each
// operation performs before touching tenant data.
//
// The guards are plain function calls invoked at the top of each command or
// query handler rather than middleware, which keeps every operation
// independently unit-testable.
package auth

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
)

var (
	// ErrPermissionDenied is returned when the acting user lacks the permission
	// an operation requires.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTenantMismatch is returned when an operation targets a tenant other
	// than the one the acting user belongs to.
	ErrTenantMismatch = errors.New("operation crosses tenant boundary")

	// ErrContextIsNotConstructed is returned when a Context was not created via NewContext.
	ErrContextIsNotConstructed = errors.New("auth context must be created via NewContext")
)

// Permission identifies an action a user may perform.
type Permission string

const (
	PermManageContracts Permission = "manage_contracts"
	PermAssignDrivers   Permission = "assign_drivers"
	PermManageDrivers   Permission = "manage_drivers"
	PermViewReports     Permission = "view_reports"
)

// Role is a named permission bundle resolved by the upstream identity layer.
type Role string

const (
	RoleFleetAdmin Role = "fleet_admin"
	RoleDispatcher Role = "dispatcher"
	RoleViewer     Role = "viewer"
)

// rolePermissions maps each role to the permissions it grants.
var rolePermissions = map[Role][]Permission{
	RoleFleetAdmin: {PermManageContracts, PermAssignDrivers, PermManageDrivers, PermViewReports},
	RoleDispatcher: {PermAssignDrivers, PermViewReports},
	RoleViewer:     {PermViewReports},
}

// Context carries the tenant and user identity resolved by the upstream
// authentication layer, together with the acting user's permissions.
// Every exposed operation receives a Context and is scoped by it.
type Context struct {
	tenantID      kernel.UUID
	userID        kernel.UUID
	permissions   map[Permission]struct{}
	isConstructed bool
}

// NewContext creates an identity context for the given tenant, user and role.
// Unknown roles yield a context with no permissions.
func NewContext(tenantID, userID kernel.UUID, role Role) (Context, error) {
	if err := tenantID.Validate(); err != nil {
		return Context{}, err
	}
	if err := userID.Validate(); err != nil {
		return Context{}, err
	}

	perms := make(map[Permission]struct{}, len(rolePermissions[role]))
	for _, p := range rolePermissions[role] {
		perms[p] = struct{}{}
	}

	return Context{
		tenantID:      tenantID,
		userID:        userID,
		permissions:   perms,
		isConstructed: true,
	}, nil
}

// SystemContext creates a context for internally triggered operations such as
// scheduler passes. It carries no tenant scoping and every permission.
func SystemContext() Context {
	perms := make(map[Permission]struct{})
	for _, rolePerms := range rolePermissions {
		for _, p := range rolePerms {
			perms[p] = struct{}{}
		}
	}
	return Context{permissions: perms, isConstructed: true}
}

// TenantID returns the tenant the acting user belongs to.
// The zero UUID identifies the system context.
func (c Context) TenantID() kernel.UUID {
	return c.tenantID
}

// UserID returns the acting user's identifier.
func (c Context) UserID() kernel.UUID {
	return c.userID
}

// Validate ensures the context was created via NewContext or SystemContext.
func (c Context) Validate() error {
	if !c.isConstructed {
		return ErrContextIsNotConstructed
	}
	return nil
}

// IsSystem reports whether this is the internally triggered system context.
func (c Context) IsSystem() bool {
	return c.isConstructed && c.tenantID == kernel.UUID{}
}

// RequirePermission fails with ErrPermissionDenied unless the context grants
// the given permission.
func RequirePermission(c Context, p Permission) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := c.permissions[p]; !ok {
		return ErrPermissionDenied
	}
	return nil
}

// RequireTenant fails with ErrTenantMismatch unless the context is scoped to
// the given tenant. The system context passes for any tenant.
func RequireTenant(c Context, tenantID kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsSystem() {
		return nil
	}
	if !c.tenantID.IsEqual(tenantID) {
		return ErrTenantMismatch
	}
	return nil
}
