package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
}

// UserService defines user listing operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
}

// User handles HTTP endpoints for user accounts.
type User struct {
	authService AuthService
	userService UserService
	urls        URLResolver
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(authService AuthService, userService UserService, urls URLResolver, logger *logger.Logger) *User {
	return &User{
		authService: authService,
		userService: userService,
		urls:        urls,
		logger:      logger,
	}
}

// List returns all registered users.
func (h *User) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"users": newUserViews(users, h.urls)})
}

// SignUp registers a user from a multipart form with an avatar image.
func (h *User) SignUp(c *fiber.Ctx) error {
	h.logger.Debug("User handler: processing signup request")

	avatar, closeAvatar, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeAvatar()

	result, err := h.authService.SignUp(c.UserContext(), model.SignUpParams{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Avatar:   avatar,
	})
	if err != nil {
		return err
	}

	h.logger.Info("User handler: signup completed",
		"user_id", result.UserID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"userId": result.UserID,
		"email":  result.Email,
		"token":  result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a token.
func (h *User) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.NewValidation("Invalid inputs passed, please check your data.")
	}

	result, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.logger.Info("User handler: login completed",
		"user_id", result.UserID)

	return c.JSON(fiber.Map{
		"userId": result.UserID,
		"email":  result.Email,
		"token":  result.Token,
	})
}

// formUpload opens the named multipart file field as an Upload. The returned
// close function is safe to call exactly once after the service is done with
// the reader.
func formUpload(c *fiber.Ctx, field string) (model.Upload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return model.Upload{}, nil, apperr.NewValidation("Invalid inputs passed, please check your data.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return model.Upload{}, nil, apperr.NewValidation("Invalid inputs passed, please check your data.")
	}

	upload := model.Upload{
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
	}
	return upload, func() { _ = file.Close() }, nil
}
