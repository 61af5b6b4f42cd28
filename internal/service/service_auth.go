// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-panel/internal/config"
	"github.com/MKhiriev/go-auth-panel/internal/crypto"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/session"
	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the credential store client.
	userRepository store.UserRepository

	// session holds the current user of the panel this service serves.
	session *session.Session

	// encoder turns plaintext passwords into their stored form.
	encoder crypto.PasswordEncoder

	// bootstrapLogin and bootstrapPassword open the panel on an empty store.
	bootstrapLogin    string
	bootstrapPassword string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over userRepository that keeps
// its current user in sess and encodes passwords with encoder. The bootstrap
// credentials are taken from cfg.
func NewAuthService(
	userRepository store.UserRepository,
	sess *session.Session,
	encoder crypto.PasswordEncoder,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		session:           sess,
		encoder:           encoder,
		bootstrapLogin:    cfg.BootstrapLogin,
		bootstrapPassword: cfg.BootstrapPassword,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

// Login verifies the credentials and starts a session.
//
// The bootstrap credentials always succeed: the row named after the
// bootstrap login is returned as is, or created when missing. Any other pair
// must match exactly one row whose stored password verifies; otherwise
// [ErrInvalidCredentials] is returned. A row still encoded with the legacy
// scheme is re-encoded on success.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.isBootstrap(username, password) {
		user, err := a.bootstrapUser(ctx)
		if err != nil {
			return models.User{}, err
		}
		a.startSession(ctx, user)
		log.Info().Str("username", user.Username).Msg("bootstrap login")
		return user, nil
	}

	user, err := a.userRepository.FindUser(ctx, models.UserFilter{Username: username})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, store.ErrMultipleUsersFound) {
			log.Info().Str("username", username).Err(err).Msg("login rejected")
		} else {
			log.Err(err).Str("username", username).Msg("error looking up user")
		}
		return models.User{}, ErrInvalidCredentials
	}

	if !a.encoder.Verify(user.Password, password) {
		log.Info().Str("username", username).Msg("login rejected: password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	if a.encoder.NeedsUpgrade(user.Password) {
		user = a.upgradePassword(ctx, user, password)
	}

	a.startSession(ctx, user)
	log.Info().Str("user_id", user.ID).Msg("user logged in")

	return user, nil
}

func (a *authService) isBootstrap(username, password string) bool {
	return a.bootstrapLogin != "" &&
		username == a.bootstrapLogin &&
		password == a.bootstrapPassword
}

// bootstrapUser returns the bootstrap row, creating it if absent.
func (a *authService) bootstrapUser(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	filter := models.UserFilter{Username: a.bootstrapLogin}
	user, err := a.userRepository.FindUser(ctx, filter)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("error looking up bootstrap user")
		return models.User{}, remoteError("error looking up admin user", err)
	}

	encoded, err := a.encoder.Encode(a.bootstrapPassword)
	if err != nil {
		return models.User{}, err
	}

	user, err = a.userRepository.CreateUser(ctx, models.User{Username: a.bootstrapLogin, Password: encoded})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		// created concurrently by another panel
		user, err = a.userRepository.FindUser(ctx, filter)
	}
	if err != nil {
		log.Err(err).Msg("error creating bootstrap user")
		return models.User{}, remoteError("error creating admin user", err)
	}

	log.Info().Str("user_id", user.ID).Msg("bootstrap user created")
	return user, nil
}

// upgradePassword re-encodes a legacy password with the current scheme.
// Failures are logged and the row is left as it was.
func (a *authService) upgradePassword(ctx context.Context, user models.User, password string) models.User {
	log := logger.FromContext(ctx)

	encoded, err := a.encoder.Encode(password)
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("password upgrade skipped")
		return user
	}

	now := a.now()
	err = a.userRepository.UpdateUser(ctx, user.ID, models.UserUpdate{Password: &encoded, UpdatedAt: now})
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("password upgrade failed")
		return user
	}

	log.Info().Str("user_id", user.ID).Msg("password upgraded")
	user.Password = encoded
	user.UpdatedAt = now
	return user
}

// startSession makes user current. A failure to persist the slot only loses
// the session across restarts, so it is logged rather than returned.
func (a *authService) startSession(ctx context.Context, user models.User) {
	if err := a.session.Save(ctx, user); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", user.ID).Msg("session not persisted")
	}
}

// Logout clears the session in memory and in the persisted slot.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("error clearing session slot")
	}
	return nil
}

// CurrentUser returns the current user. A malformed persisted slot counts as
// no session and is cleared.
func (a *authService) CurrentUser(ctx context.Context) (models.User, bool) {
	log := logger.FromContext(ctx)

	user, err := a.session.Load(ctx)
	switch {
	case err == nil:
		return user, true
	case errors.Is(err, session.ErrMalformedSession):
		log.Warn().Err(err).Msg("discarding malformed session slot")
		if clearErr := a.session.Clear(ctx); clearErr != nil {
			log.Warn().Err(clearErr).Msg("error clearing session slot")
		}
	case errors.Is(err, session.ErrNoSession):
	default:
		log.Warn().Err(err).Msg("error reading session slot")
	}

	return models.User{}, false
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.CurrentUser(ctx)
	return ok
}

func (a *authService) requireSession(ctx context.Context) (models.User, error) {
	user, ok := a.CurrentUser(ctx)
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}
	return user, nil
}

// ChangePassword checks currentPassword against the session's stored
// password, then stores the encoded newPassword. The store is not touched on
// a mismatch.
func (a *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	user, err := a.requireSession(ctx)
	if err != nil {
		return err
	}

	if !a.encoder.Verify(user.Password, currentPassword) {
		log.Info().Str("user_id", user.ID).Msg("password change rejected: wrong current password")
		return ErrWrongCurrentPassword
	}

	encoded, err := a.encoder.Encode(newPassword)
	if err != nil {
		return err
	}

	now := a.now()
	err = a.userRepository.UpdateUser(ctx, user.ID, models.UserUpdate{Password: &encoded, UpdatedAt: now})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error changing password")
		return remoteError("error changing password", err)
	}

	user.Password = encoded
	user.UpdatedAt = now
	a.startSession(ctx, user)

	log.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

// ChangeUsername renames the current user.
func (a *authService) ChangeUsername(ctx context.Context, newUsername string) error {
	log := logger.FromContext(ctx)

	user, err := a.requireSession(ctx)
	if err != nil {
		return err
	}

	now := a.now()
	err = a.userRepository.UpdateUser(ctx, user.ID, models.UserUpdate{Username: &newUsername, UpdatedAt: now})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Str("username", newUsername).Msg("username change rejected: taken")
			return ErrUsernameTaken
		}
		log.Err(err).Str("user_id", user.ID).Msg("error changing username")
		return remoteError("error changing username", err)
	}

	user.Username = newUsername
	user.UpdatedAt = now
	a.startSession(ctx, user)

	log.Info().Str("user_id", user.ID).Str("username", newUsername).Msg("username changed")
	return nil
}

// CreateUser inserts a user with the encoded password and returns the
// stored row. Any logged-in user may create users.
func (a *authService) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := a.requireSession(ctx); err != nil {
		return models.User{}, err
	}

	encoded, err := a.encoder.Encode(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Username: username, Password: encoded})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Str("username", username).Msg("user creation rejected: taken")
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("username", username).Msg("error creating user")
		return models.User{}, remoteError("error creating user", err)
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

// GetAllUsers lists all users ordered by username.
func (a *authService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.FindUsers(ctx, models.UserFilter{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing users")
		return nil, remoteError("error listing users", err)
	}
	return users, nil
}

// DeleteUser removes the user with userID. The current user cannot delete
// itself.
func (a *authService) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	user, err := a.requireSession(ctx)
	if err != nil {
		return err
	}

	if userID == user.ID {
		return ErrSelfDeletionForbidden
	}

	err = a.userRepository.DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// already gone
		log.Info().Str("user_id", userID).Msg("user to delete not found")
		return nil
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error deleting user")
		return remoteError("error deleting user", err)
	}

	log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
