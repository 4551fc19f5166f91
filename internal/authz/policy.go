// Package authz holds the single role policy table consulted by the
// authorization gate. No other copy of these rules may exist.
package authz

import (
	"net/http"
	"slices"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ActionFromMethod maps the HTTP method of a registered route to its
// policy action. Routes are bound statically, so the mapping is fixed
// at registration time.
func ActionFromMethod(method string) (Action, bool) {
	switch method {
	case http.MethodGet, http.MethodHead:
		return ActionRead, true
	case http.MethodPost:
		return ActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate, true
	case http.MethodDelete:
		return ActionDelete, true
	default:
		return "", false
	}
}

// Class is the category of domain object a route operates on.
type Class string

const (
	ClassUser      Class = "user"
	ClassEvent     Class = "event"
	ClassContract  Class = "contract"
	ClassResource  Class = "resource"
	ClassProvider  Class = "provider"
	ClassPersonnel Class = "personnel"
	ClassTaxonomy  Class = "taxonomy"
	ClassReport    Class = "report"
)

var (
	adminOnly  = []string{entity.RoleAdmin}
	planners   = []string{entity.RoleAdmin, entity.RoleCoordinador}
	allReaders = []string{entity.RoleAdmin, entity.RoleCoordinador, entity.RoleLider}
)

var allowSets = map[Class]map[Action][]string{
	ClassUser: {
		ActionRead:   planners,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ClassEvent: {
		ActionRead:   allReaders,
		ActionCreate: planners,
		ActionUpdate: planners,
		ActionDelete: adminOnly,
	},
	ClassContract: {
		ActionRead:   planners,
		ActionCreate: planners,
		ActionUpdate: planners,
		ActionDelete: adminOnly,
	},
	ClassResource: {
		ActionRead:   allReaders,
		ActionCreate: planners,
		ActionUpdate: planners,
		ActionDelete: adminOnly,
	},
	ClassProvider: {
		ActionRead:   planners,
		ActionCreate: planners,
		ActionUpdate: planners,
		ActionDelete: adminOnly,
	},
	ClassPersonnel: {
		ActionRead:   allReaders,
		ActionCreate: planners,
		ActionUpdate: planners,
		ActionDelete: adminOnly,
	},
	ClassTaxonomy: {
		ActionRead:   allReaders,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ClassReport: {
		ActionRead:   planners,
		ActionDelete: adminOnly,
	},
}

// IsPermitted reports whether role may perform action on class. Global
// role restrictions are applied first and only ever narrow the
// resource-specific allow-set: lider is read-only, coordinador never
// deletes. Unknown roles, classes and actions are rejected.
func IsPermitted(role string, class Class, action Action) bool {
	switch role {
	case entity.RoleLider:
		if action != ActionRead {
			return false
		}
	case entity.RoleCoordinador:
		if action == ActionDelete {
			return false
		}
	case entity.RoleAdmin:
	default:
		return false
	}

	roles, ok := allowSets[class][action]
	if !ok {
		return false
	}

	return slices.Contains(roles, role)
}

// AllowedRoles returns the roles that may perform action on class,
// for denial responses. The returned slice is a copy.
func AllowedRoles(class Class, action Action) []string {
	roles, ok := allowSets[class][action]
	if !ok {
		return nil
	}

	allowed := make([]string, 0, len(roles))

	for _, role := range roles {
		if IsPermitted(role, class, action) {
			allowed = append(allowed, role)
		}
	}

	return allowed
}
