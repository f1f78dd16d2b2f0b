package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// Authorizer checks admin access for a session.
type Authorizer interface {
	RequireAdmin(ctx context.Context, session *model.Session) error
}

// ListLimits bounds the page size of user lists.
type ListLimits struct {
	Default int
	Max     int
}

// Users lists, inspects and mutates user accounts on behalf of an admin.
type Users struct {
	gate      Authorizer
	userStore model.UserStore
	avatars   model.ObjectStorage
	limits    ListLimits
	logger    *logger.Logger
}

// NewUsers creates the user service. avatars may be nil when object storage is disabled.
func NewUsers(
	gate Authorizer,
	userStore model.UserStore,
	avatars model.ObjectStorage,
	limits ListLimits,
	logger *logger.Logger,
) *Users {
	return &Users{
		gate:      gate,
		userStore: userStore,
		avatars:   avatars,
		limits:    limits,
		logger:    logger,
	}
}

// ListUsers returns one page of users matching q together with the total number of matches.
func (s *Users) ListUsers(ctx context.Context, session *model.Session, q model.UserQuery) (model.UserPage, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.UserPage{}, err
	}

	q, err := q.Normalize(s.limits.Default, s.limits.Max)
	if err != nil {
		return model.UserPage{}, err
	}

	s.logger.Debug("User service: listing users",
		"caller_id", session.UserID,
		"search", q.Search,
		"sort_by", q.SortBy,
		"sort_direction", q.SortDirection,
		"limit", q.Limit,
		"offset", q.Offset)

	total, err := s.userStore.Count(ctx, q.Search)
	if err != nil {
		s.logger.Error("User service: failed to count users",
			"caller_id", session.UserID,
			"error", err.Error())
		return model.UserPage{}, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.userStore.List(ctx, q)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"caller_id", session.UserID,
			"error", err.Error())
		return model.UserPage{}, fmt.Errorf("failed to list users: %w", err)
	}

	return model.UserPage{
		Users:  users,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}

// GetUser returns one user with its chat count.
func (s *Users) GetUser(ctx context.Context, session *model.Session, userID string) (model.User, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.User{}, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, s.storeError("get user", session, userID, err)
	}

	return user, nil
}

// SetRole changes the role of another user.
func (s *Users) SetRole(ctx context.Context, session *model.Session, userID string, role model.Role) (model.User, error) {
	return s.UpdateUser(ctx, session, userID, model.UserPatch{Role: &role})
}

// SetBanned bans or unbans another user. reason is stored only when banning.
func (s *Users) SetBanned(ctx context.Context, session *model.Session, userID string, banned bool, reason *string) (model.User, error) {
	return s.UpdateUser(ctx, session, userID, model.UserPatch{Banned: &banned, BanReason: reason})
}

// UpdateProfile changes the name and/or email of a user. Admins may edit their own profile.
func (s *Users) UpdateProfile(ctx context.Context, session *model.Session, userID string, name, email *string) (model.User, error) {
	return s.UpdateUser(ctx, session, userID, model.UserPatch{Name: name, Email: email})
}

// SetAdminGrantedPro sets the pro override flag. Admins may set it on themselves.
func (s *Users) SetAdminGrantedPro(ctx context.Context, session *model.Session, userID string, granted bool) (model.User, error) {
	return s.UpdateUser(ctx, session, userID, model.UserPatch{AdminGrantedPro: &granted})
}

// UpdateUser applies patch to one user after validating it.
// Role and ban changes on the caller's own account are refused.
func (s *Users) UpdateUser(ctx context.Context, session *model.Session, userID string, patch model.UserPatch) (model.User, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.User{}, err
	}

	patch, err := validatePatch(patch)
	if err != nil {
		return model.User{}, err
	}

	if userID == session.UserID && patch.TouchesProtectedFields() {
		action := "ban or unban"
		if patch.Role != nil {
			action = "change the role of"
		}
		s.logger.Info("User service: refused self action",
			"caller_id", session.UserID,
			"action", action)
		return model.User{}, model.NewSelfActionError(action)
	}

	s.logger.Debug("User service: updating user",
		"caller_id", session.UserID,
		"target_id", userID)

	user, err := s.userStore.Update(ctx, userID, patch)
	if err != nil {
		return model.User{}, s.storeError("update user", session, userID, err)
	}

	s.logger.Info("User service: user updated",
		"caller_id", session.UserID,
		"target_id", userID)

	return user, nil
}

// DeleteUser hard-deletes another user. Deleting an absent user fails with model.ErrNotFound.
func (s *Users) DeleteUser(ctx context.Context, session *model.Session, userID string) error {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return err
	}

	if userID == session.UserID {
		s.logger.Info("User service: refused self delete",
			"caller_id", session.UserID)
		return model.NewSelfActionError("delete")
	}

	user, err := s.userStore.Delete(ctx, userID)
	if err != nil {
		return s.storeError("delete user", session, userID, err)
	}

	s.logger.Info("User service: user deleted",
		"caller_id", session.UserID,
		"target_id", userID)

	s.removeAvatar(ctx, user)

	return nil
}

func (s *Users) removeAvatar(ctx context.Context, user model.User) {
	if s.avatars == nil || user.Image == nil {
		return
	}

	key, ok := s.avatars.ObjectKey(*user.Image)
	if !ok {
		return
	}

	exists, err := s.avatars.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("User service: failed to check avatar",
			"target_id", user.ID,
			"key", key,
			"error", err.Error())
		return
	}
	if !exists {
		s.logger.Debug("User service: avatar already gone",
			"target_id", user.ID,
			"key", key)
		return
	}

	if err := s.avatars.Delete(ctx, key); err != nil {
		s.logger.Warn("User service: failed to remove avatar",
			"target_id", user.ID,
			"key", key,
			"error", err.Error())
	}
}

// storeError passes taxonomy errors through and wraps infrastructure failures.
func (s *Users) storeError(op string, session *model.Session, userID string, err error) error {
	if model.KindOf(err) != model.KindStore {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	s.logger.Error("User service: failed to "+op,
		"caller_id", session.UserID,
		"target_id", userID,
		"error", err.Error())
	return fmt.Errorf("failed to %s: %w", op, err)
}

func validatePatch(patch model.UserPatch) (model.UserPatch, error) {
	if patch.Empty() {
		return patch, model.NewInvalidInputError("no fields to update")
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return patch, model.NewInvalidInputError("invalid role %q", *patch.Role)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return patch, model.NewInvalidInputError("name must not be empty")
		}
		patch.Name = &name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return patch, model.NewInvalidInputError("invalid email %q", email)
		}
		email = strings.ToLower(email)
		patch.Email = &email
	}
	if patch.BanReason != nil {
		reason := strings.TrimSpace(*patch.BanReason)
		if reason == "" {
			patch.BanReason = nil
		} else {
			patch.BanReason = &reason
		}
		if patch.Empty() {
			return patch, model.NewInvalidInputError("no fields to update")
		}
	}
	return patch, nil
}
