package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/api/metrics"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// UsersController is the page controller for account moderation: one
// state group for regular users, a completely separate one for admins.
// Successful mutations refresh both groups, since toggling the admin
// flag moves an account between them.
type UsersController struct {
	Regular *Collection[domain.User]
	Admins  *Collection[domain.User]

	backend ports.Backend
	token   string
	log     zerolog.Logger
}

func NewUsersController(backend ports.Backend, token string, log zerolog.Logger) *UsersController {
	return &UsersController{
		Regular: NewCollection(func(ctx context.Context, q domain.Query) (*domain.Page[domain.User], error) {
			return backend.ListRegularUsers(ctx, token, q)
		}),
		Admins: NewCollection(func(ctx context.Context, q domain.Query) (*domain.Page[domain.User], error) {
			return backend.ListAdmins(ctx, token, q)
		}),
		backend: backend,
		token:   token,
		log:     log,
	}
}

// LoadAll fetches both groups concurrently; errors stay in each
// group's own slot.
func (uc *UsersController) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, c := range []*Collection[domain.User]{uc.Regular, uc.Admins} {
		wg.Add(1)
		go func(c *Collection[domain.User]) {
			defer wg.Done()
			_ = c.Load(ctx)
		}(c)
	}
	wg.Wait()
}

// Get fetches one account with its profile attributes.
func (uc *UsersController) Get(ctx context.Context, id int) (*domain.User, error) {
	return uc.backend.GetUser(ctx, uc.token, id)
}

// ToggleApproval flips the staff-approval flag on an account.
func (uc *UsersController) ToggleApproval(ctx context.Context, id int) error {
	return uc.mutate(ctx, "toggle_approval", id, func(u *domain.User) map[string]any {
		return map[string]any{"onayli": flagValue(!u.Approved.Bool())}
	})
}

// ToggleAdmin grants or revokes the administrator flag.
func (uc *UsersController) ToggleAdmin(ctx context.Context, id int) error {
	return uc.mutate(ctx, "toggle_admin", id, func(u *domain.User) map[string]any {
		return map[string]any{"is_helios": flagValue(!u.IsAdmin.Bool())}
	})
}

// Delete removes an account. Without confirmation no request reaches
// the backend at all.
func (uc *UsersController) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := uc.backend.DeleteUser(ctx, uc.token, id); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("user", "delete", "error").Inc()
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues("user", "delete", "ok").Inc()
	uc.log.Info().Int("user_id", id).Msg("user deleted")
	uc.LoadAll(ctx)
	return nil
}

// mutate reads the current account, applies the field update the
// backend expects, and refreshes both groups on success. Failures
// leave every state group unchanged.
func (uc *UsersController) mutate(ctx context.Context, action string, id int, fields func(*domain.User) map[string]any) error {
	user, err := uc.backend.GetUser(ctx, uc.token, id)
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("user", action, "error").Inc()
		return err
	}
	if _, err := uc.backend.UpdateUser(ctx, uc.token, id, fields(user)); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("user", action, "error").Inc()
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues("user", action, "ok").Inc()
	uc.log.Info().Int("user_id", id).Str("action", action).Msg("user updated")
	uc.LoadAll(ctx)
	return nil
}

// flagValue renders a boolean as the 0/1 integer the legacy schema uses.
func flagValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
