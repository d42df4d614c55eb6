// Package rest wires the HTTP surface: routes, middleware and error
// rendering on top of Fiber.
package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/yourplaces/places-server/internal/api/rest/handler"
	"github.com/yourplaces/places-server/internal/api/rest/middleware"
	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// Router registers HTTP routes and middleware.
type Router struct {
	authService  handler.AuthService
	userService  handler.UserService
	placeService handler.PlaceService
	storage      model.MediaStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	placeService handler.PlaceService,
	storage model.MediaStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		userService:  userService,
		placeService: placeService,
		storage:      storage,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register builds the Fiber application with all routes and middleware.
// Reads on places are public; mutations require a valid token.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.logger)

	app.Use(logging.Handle)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	userHandler := handler.NewUser(r.authService, r.userService, r.storage, r.logger)
	placeHandler := handler.NewPlace(r.placeService, r.storage, r.logger)
	mediaHandler := handler.NewMedia(r.storage, r.logger)

	app.Get("/uploads/images/:filename", mediaHandler.Serve)

	users := app.Group("/api/users")
	users.Get("/", userHandler.List)
	users.Post("/signup", userHandler.SignUp)
	users.Post("/login", userHandler.Login)

	places := app.Group("/api/places")
	places.Get("/user/:uid", placeHandler.GetByUser)
	places.Get("/:pid", placeHandler.GetByID)
	places.Post("/", authenticate.Handle, placeHandler.Create)
	places.Patch("/:pid", authenticate.Handle, placeHandler.Update)
	places.Delete("/:pid", authenticate.Handle, placeHandler.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return apperr.NewNotFound("Could not find this route.")
	})

	return app
}
