package authz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/authz"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

var allClasses = []authz.Class{
	authz.ClassUser,
	authz.ClassEvent,
	authz.ClassContract,
	authz.ClassResource,
	authz.ClassProvider,
	authz.ClassPersonnel,
	authz.ClassTaxonomy,
	authz.ClassReport,
}

var allActions = []authz.Action{
	authz.ActionRead,
	authz.ActionCreate,
	authz.ActionUpdate,
	authz.ActionDelete,
}

func TestIsPermitted_LiderIsReadOnly(t *testing.T) {
	t.Parallel()

	for _, class := range allClasses {
		for _, action := range allActions {
			if action == authz.ActionRead {
				continue
			}

			require.False(t, authz.IsPermitted(entity.RoleLider, class, action),
				"lider must not %s %s", action, class)
		}
	}
}

func TestIsPermitted_CoordinadorNeverDeletes(t *testing.T) {
	t.Parallel()

	for _, class := range allClasses {
		require.False(t, authz.IsPermitted(entity.RoleCoordinador, class, authz.ActionDelete),
			"coordinador must not delete %s", class)
	}
}

func TestIsPermitted_AdminUnrestricted(t *testing.T) {
	t.Parallel()

	for _, class := range allClasses {
		for _, action := range allActions {
			if class == authz.ClassReport && (action == authz.ActionCreate || action == authz.ActionUpdate) {
				// reports expose no create/update surface
				continue
			}

			require.True(t, authz.IsPermitted(entity.RoleAdmin, class, action),
				"admin must be allowed to %s %s", action, class)
		}
	}
}

func TestIsPermitted_UnknownInputsRejected(t *testing.T) {
	t.Parallel()

	require.False(t, authz.IsPermitted("superuser", authz.ClassEvent, authz.ActionRead))
	require.False(t, authz.IsPermitted("", authz.ClassEvent, authz.ActionRead))
	require.False(t, authz.IsPermitted(entity.RoleAdmin, authz.Class("unknown"), authz.ActionRead))
	require.False(t, authz.IsPermitted(entity.RoleAdmin, authz.ClassEvent, authz.Action("purge")))
}

func TestIsPermitted_AllowSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role   string
		class  authz.Class
		action authz.Action
		want   bool
	}{
		{entity.RoleLider, authz.ClassEvent, authz.ActionRead, true},
		{entity.RoleLider, authz.ClassUser, authz.ActionRead, false},
		{entity.RoleLider, authz.ClassContract, authz.ActionRead, false},
		{entity.RoleLider, authz.ClassTaxonomy, authz.ActionRead, true},
		{entity.RoleCoordinador, authz.ClassEvent, authz.ActionCreate, true},
		{entity.RoleCoordinador, authz.ClassUser, authz.ActionCreate, false},
		{entity.RoleCoordinador, authz.ClassTaxonomy, authz.ActionUpdate, false},
		{entity.RoleCoordinador, authz.ClassReport, authz.ActionRead, true},
	}

	for _, tt := range tests {
		got := authz.IsPermitted(tt.role, tt.class, tt.action)
		require.Equal(t, tt.want, got, "%s %s %s", tt.role, tt.action, tt.class)
	}
}

func TestAllowedRoles(t *testing.T) {
	t.Parallel()

	roles := authz.AllowedRoles(authz.ClassEvent, authz.ActionDelete)
	require.NotContains(t, roles, entity.RoleCoordinador)
	require.NotContains(t, roles, entity.RoleLider)
	require.Contains(t, roles, entity.RoleAdmin)

	require.Nil(t, authz.AllowedRoles(authz.ClassReport, authz.ActionCreate))
}

func TestActionFromMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   authz.Action
		ok     bool
	}{
		{"GET", authz.ActionRead, true},
		{"HEAD", authz.ActionRead, true},
		{"POST", authz.ActionCreate, true},
		{"PUT", authz.ActionUpdate, true},
		{"PATCH", authz.ActionUpdate, true},
		{"DELETE", authz.ActionDelete, true},
		{"OPTIONS", "", false},
		{"TRACE", "", false},
	}

	for _, tt := range tests {
		got, ok := authz.ActionFromMethod(tt.method)
		require.Equal(t, tt.ok, ok, tt.method)
		require.Equal(t, tt.want, got, tt.method)
	}
}
