package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
	"github.com/yourplaces/places-server/internal/password"
)

const minPasswordLength = 5

// Auth verifies credentials and issues bearer tokens.
type Auth struct {
	userStore    model.UserStore
	storage      model.MediaStore
	hasher       password.Hasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	storage model.MediaStore,
	hasher password.Hasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		storage:      storage,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// normalizeEmail lowercases the address; Test@test.com and test@test.com
// are the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignUp(params model.SignUpParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	if len(params.Password) < minPasswordLength {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	if params.Avatar.Reader == nil || params.Avatar.Size == 0 {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}
	return nil
}

// SignUp registers a user: conflict check, avatar upload, password hash,
// persist, token. The uploaded avatar is removed again if any later step
// fails before the user row referencing it exists.
func (a *Auth) SignUp(ctx context.Context, params model.SignUpParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user signup",
		"email", params.Email)

	if err := validateSignUp(params); err != nil {
		return model.AuthResult{}, err
	}
	email := normalizeEmail(params.Email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, apperr.NewInternal("Signing up failed, please try again later.")
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.AuthResult{}, apperr.NewConflict("User exists already, please login instead.")
	}

	imageKey, err := a.storage.Save(ctx, params.Avatar)
	if err != nil {
		if errors.Is(err, model.ErrUnsupportedMediaType) {
			return model.AuthResult{}, apperr.NewValidation("Invalid mime type!")
		}
		if errors.Is(err, model.ErrMediaTooLarge) {
			return model.AuthResult{}, apperr.NewValidation("Uploaded file is too large.")
		}
		a.logger.Error("Auth service: failed to store avatar",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, apperr.NewInternal("Signing up failed, please try again later.")
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		discardMedia(ctx, a.storage, a.logger, imageKey)
		return model.AuthResult{}, apperr.NewInternal("Could not create user, please try again.")
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        email,
		PasswordHash: hash,
		Image:        imageKey,
		Places:       []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		discardMedia(ctx, a.storage, a.logger, imageKey)
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.AuthResult{}, apperr.NewConflict("User exists already, please login instead.")
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, apperr.NewInternal("Signing up failed, please try again.")
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to sign token",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, apperr.NewInternal("Signing up failed, please try again later.")
	}

	a.logger.Info("Auth service: user signup completed",
		"email", email,
		"user_id", user.ID)

	return model.AuthResult{UserID: user.ID, Email: user.Email, Token: tokenString}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail identically; the client never learns which one it was.
func (a *Auth) Login(ctx context.Context, email, pass string) (model.AuthResult, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apperr.NewAuthentication("Invalid credentials, could not log you in.")
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, apperr.NewInternal("Logging in failed, please try again later.")
	}

	if err := a.hasher.Compare(user.PasswordHash, pass); err != nil {
		return model.AuthResult{}, apperr.NewAuthentication("Invalid credentials, could not log you in.")
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to sign token",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, apperr.NewInternal("Logging in failed, please try again later.")
	}

	a.logger.Info("Auth service: user login completed",
		"email", email,
		"user_id", user.ID)

	return model.AuthResult{UserID: user.ID, Email: user.Email, Token: tokenString}, nil
}
