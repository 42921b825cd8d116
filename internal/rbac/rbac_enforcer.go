package rbac

import (
	"context"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var menuActions = []string{ActionView, ActionCreate, ActionEdit, ActionDelete}

// PolicyCache drops a role's cached policies after its grants change.
type PolicyCache interface {
	Invalidate(roleID int64)
}

// Enforcer answers menu permission checks for a role from its RoleMenu grants.
// Each role is loaded into casbin once, on its first check, and stays until
// Invalidate is called for it.
type Enforcer struct {
	repo   Repository
	casbin *casbin.Enforcer
	sf     singleflight.Group
	mu     sync.RWMutex
	loaded map[int64]bool
	gen    map[int64]uint64
	logger *zap.Logger
}

func NewEnforcer(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) *Enforcer {
	l := zap.L().Named("rbac.enforcer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.enforcer")
	}
	return &Enforcer{
		repo:   repo,
		casbin: enforcer,
		loaded: map[int64]bool{},
		gen:    map[int64]uint64{},
		logger: l,
	}
}

func roleSubject(roleID int64) string {
	return "role:" + strconv.FormatInt(roleID, 10)
}

func (e *Enforcer) Enforce(ctx context.Context, roleID int64, menu, action string) (bool, error) {
	if err := e.ensureLoaded(ctx, roleID); err != nil {
		return false, err
	}

	e.mu.RLock()
	allowed, err := e.casbin.Enforce(roleSubject(roleID), menu, action)
	e.mu.RUnlock()
	if err != nil {
		return false, err
	}

	e.logger.Debug("rbac enforce",
		zap.Int64("role_id", roleID),
		zap.String("menu", menu),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Invalidate removes the role's policies; the next check reloads them.
func (e *Enforcer) Invalidate(roleID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen[roleID]++
	delete(e.loaded, roleID)
	if _, err := e.casbin.RemoveFilteredPolicy(0, roleSubject(roleID)); err != nil {
		e.logger.Warn("rbac invalidate failed", zap.Int64("role_id", roleID), zap.Error(err))
	}
}

func (e *Enforcer) ensureLoaded(ctx context.Context, roleID int64) error {
	e.mu.RLock()
	ok := e.loaded[roleID]
	e.mu.RUnlock()
	if ok {
		return nil
	}

	_, err, _ := e.sf.Do(roleSubject(roleID), func() (any, error) {
		return nil, e.load(ctx, roleID)
	})
	return err
}

func (e *Enforcer) load(ctx context.Context, roleID int64) error {
	e.mu.RLock()
	gen := e.gen[roleID]
	e.mu.RUnlock()

	grants, err := e.repo.RoleMenus(ctx, roleID)
	if err != nil {
		return err
	}

	sub := roleSubject(roleID)
	rules := make([][]string, 0, len(grants)*len(menuActions))
	for _, g := range grants {
		for _, act := range menuActions {
			if g.Allows(act) {
				rules = append(rules, []string{sub, g.MenuName, act})
			}
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// An Invalidate during the read leaves the role unloaded so the next check
	// reads the grants again.
	if _, err := e.casbin.RemoveFilteredPolicy(0, sub); err != nil {
		return err
	}
	if len(rules) > 0 {
		if _, err := e.casbin.AddPolicies(rules); err != nil {
			return err
		}
	}
	if e.gen[roleID] == gen {
		e.loaded[roleID] = true
	}

	e.logger.Debug("rbac policies loaded", zap.Int64("role_id", roleID), zap.Int("policies", len(rules)))
	return nil
}
