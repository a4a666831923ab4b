// Package permission wraps casbin RBAC for the staff surface. Policies
// are stored through the gorm adapter so grants survive restarts.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"zarya/internal/shared/logger"
)

const RoleStaff = "staff"

// rbacModel is the standard RBAC model with role inheritance.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// defaultPolicies grant the staff role its workflow surface.
var defaultPolicies = [][]string{
	{RoleStaff, "/api/v1/tickets/:id/close", "POST"},
	{RoleStaff, "/api/v1/moderation/reviews", "GET"},
	{RoleStaff, "/api/v1/moderation/reviews/:id", "POST"},
	{RoleStaff, "/api/v1/admin/*", "GET"},
	{RoleStaff, "/api/v1/admin/*", "POST"},
	{RoleStaff, "/api/v1/admin/*", "PUT"},
	{RoleStaff, "/api/v1/admin/*", "DELETE"},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}

	if err := e.ensureDefaultPolicies(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Enforcer) ensureDefaultPolicies() error {
	for _, p := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add default policy: %w", err)
		}
	}
	return e.enforcer.SavePolicy()
}

func (e *Enforcer) Enforce(subject, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed",
			"error", err, "subject", subject, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// GrantStaffRole links a user to the staff role.
func (e *Enforcer) GrantStaffRole(userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddRoleForUser(userID, RoleStaff); err != nil {
		return fmt.Errorf("failed to grant staff role: %w", err)
	}
	return e.enforcer.SavePolicy()
}

func (e *Enforcer) RevokeStaffRole(userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.DeleteRoleForUser(userID, RoleStaff); err != nil {
		return fmt.Errorf("failed to revoke staff role: %w", err)
	}
	return e.enforcer.SavePolicy()
}
