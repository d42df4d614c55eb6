package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/mocks"
	"github.com/yourplaces/places-server/internal/model"
	"github.com/yourplaces/places-server/internal/password"
	"github.com/yourplaces/places-server/internal/testutil"
)

func validSignUpParams() model.SignUpParams {
	return model.SignUpParams{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "secret",
		Avatar: model.Upload{
			Reader:      bytes.NewReader([]byte("fake-jpeg")),
			Size:        9,
			ContentType: "image/jpeg",
		},
	}
}

func TestAuth_SignUp_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	storage := &mocks.MediaStore{}
	hasher := &mocks.Hasher{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	storage.On("Save", mock.Anything, mock.Anything).Return("avatar.jpeg", nil)
	hasher.On("Hash", "secret").Return("$hashed$", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "a@x.com" && u.PasswordHash == "$hashed$" && u.Image == "avatar.jpeg" && len(u.Places) == 0
	})).Return(model.User{ID: userID, Email: "a@x.com"}, nil)
	tokMan.On("Generate", userID, "a@x.com").Return("jwt-token", nil)

	a := NewAuth(userStore, storage, hasher, tokMan, testutil.MakeNoopLogger())

	result, err := a.SignUp(ctx, validSignUpParams())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", result.Email)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, userID, result.UserID)
}

func TestAuth_SignUp_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	storage := &mocks.MediaStore{}
	hasher := &mocks.Hasher{}
	tokMan := &mocks.TokenManager{}

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{ID: uuid.New()}, nil)

	a := NewAuth(userStore, storage, hasher, tokMan, testutil.MakeNoopLogger())

	_, err := a.SignUp(ctx, validSignUpParams())
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Status)
	assert.Equal(t, "User exists already, please login instead.", appErr.Message)

	// The store gained no new record and no file was written.
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuth_SignUp_EmailNormalized(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	storage := &mocks.MediaStore{}
	hasher := &mocks.Hasher{}
	tokMan := &mocks.TokenManager{}

	userStore.On("GetByEmail", mock.Anything, "ann@x.com").Return(model.User{}, model.ErrNotFound)
	storage.On("Save", mock.Anything, mock.Anything).Return("avatar.jpeg", nil)
	hasher.On("Hash", mock.Anything).Return("$hashed$", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ann@x.com"
	})).Return(model.User{ID: uuid.New(), Email: "ann@x.com"}, nil)
	tokMan.On("Generate", mock.Anything, "ann@x.com").Return("jwt-token", nil)

	a := NewAuth(userStore, storage, hasher, tokMan, testutil.MakeNoopLogger())

	params := validSignUpParams()
	params.Email = "Ann@X.com"
	result, err := a.SignUp(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", result.Email)
}

func TestAuth_SignUp_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.SignUpParams)
	}{
		{"empty name", func(p *model.SignUpParams) { p.Name = "  " }},
		{"malformed email", func(p *model.SignUpParams) { p.Email = "not-an-email" }},
		{"short password", func(p *model.SignUpParams) { p.Password = "1234" }},
		{"missing avatar", func(p *model.SignUpParams) { p.Avatar = model.Upload{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := &mocks.UserStore{}
			a := NewAuth(userStore, &mocks.MediaStore{}, &mocks.Hasher{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

			params := validSignUpParams()
			tt.mutate(&params)

			_, err := a.SignUp(context.Background(), params)
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 422, appErr.Status)

			// Validation happens before any side effect.
			userStore.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestAuth_SignUp_CreateFails_AvatarRemoved(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	storage := &mocks.MediaStore{}
	hasher := &mocks.Hasher{}
	tokMan := &mocks.TokenManager{}

	deleted := make(chan string, 1)

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	storage.On("Save", mock.Anything, mock.Anything).Return("avatar.jpeg", nil)
	hasher.On("Hash", mock.Anything).Return("$hashed$", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, errors.New("connection lost"))
	storage.On("Delete", mock.Anything, "avatar.jpeg").Run(func(args mock.Arguments) {
		deleted <- args.String(1)
	}).Return(nil)

	a := NewAuth(userStore, storage, hasher, tokMan, testutil.MakeNoopLogger())

	_, err := a.SignUp(ctx, validSignUpParams())
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)

	select {
	case key := <-deleted:
		assert.Equal(t, "avatar.jpeg", key)
	case <-time.After(time.Second):
		t.Fatal("expected compensating avatar deletion")
	}
}

func TestAuth_SignUp_PasswordNeverStoredPlaintext(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	storage := &mocks.MediaStore{}
	tokMan := &mocks.TokenManager{}
	hasher := password.NewBcrypt(4)

	var persisted model.User
	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	storage.On("Save", mock.Anything, mock.Anything).Return("avatar.jpeg", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(model.User)
	}).Return(model.User{ID: uuid.New(), Email: "a@x.com"}, nil)
	tokMan.On("Generate", mock.Anything, mock.Anything).Return("jwt-token", nil)

	a := NewAuth(userStore, storage, hasher, tokMan, testutil.MakeNoopLogger())

	_, err := a.SignUp(ctx, validSignUpParams())
	require.NoError(t, err)

	assert.NotEqual(t, "secret", persisted.PasswordHash)
	require.NoError(t, hasher.Compare(persisted.PasswordHash, "secret"))
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.Hasher{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{ID: userID, Email: "a@x.com", PasswordHash: "$hashed$"}, nil)
	hasher.On("Compare", "$hashed$", "secret").Return(nil)
	tokMan.On("Generate", userID, "a@x.com").Return("jwt-token", nil)

	a := NewAuth(userStore, &mocks.MediaStore{}, hasher, tokMan, testutil.MakeNoopLogger())

	result, err := a.Login(ctx, "A@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, "jwt-token", result.Token)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(userStore *mocks.UserStore, hasher *mocks.Hasher)
	}{
		{
			name: "unknown email",
			setup: func(userStore *mocks.UserStore, hasher *mocks.Hasher) {
				userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(userStore *mocks.UserStore, hasher *mocks.Hasher) {
				userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{ID: uuid.New(), PasswordHash: "$hashed$"}, nil)
				hasher.On("Compare", "$hashed$", "secret").Return(errors.New("mismatch"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := &mocks.UserStore{}
			hasher := &mocks.Hasher{}
			tt.setup(userStore, hasher)

			a := NewAuth(userStore, &mocks.MediaStore{}, hasher, &mocks.TokenManager{}, testutil.MakeNoopLogger())

			_, err := a.Login(context.Background(), "a@x.com", "secret")
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 403, appErr.Status)
			// The two failure modes must be indistinguishable.
			assert.Equal(t, "Invalid credentials, could not log you in.", appErr.Message)
		})
	}
}
