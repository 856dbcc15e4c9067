package api

import (
	"context"
	"errors"
	"log"
	"showtracker/api/middleware"
	"showtracker/configs"
	_ "showtracker/docs"
	"showtracker/internal/handler"
	"showtracker/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

type Handlers struct {
	Account   *handler.AccountHandler
	Watchlist *handler.WatchlistHandler
	Review    *handler.ReviewHandler
	Playlist  *handler.PlaylistHandler
	Show      *handler.ShowHandler
	Profile   *handler.ProfileHandler
	Admin     *handler.AdminHandler
}

func InitRouter(h Handlers, authenticator middleware.IAuthenticator) *fiber.App {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			log.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		BodyLimit:    1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1 ||
				slices.Index(configs.GetDbConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	auth := middleware.NewAuthMiddleware(authenticator)
	optionalAuth := middleware.NewOptionalAuthMiddleware(authenticator)

	authRoutes := router.Group("v1/auth")
	{
		authRoutes.Post("/register", h.Account.Register)
		authRoutes.Post("/login", h.Account.Login)
		authRoutes.Post("/refresh", h.Account.Refresh)
		authRoutes.Put("/logout", auth, h.Account.Logout)
		authRoutes.Put("/password", auth, h.Account.ChangePassword)
		authRoutes.Get("/me", auth, h.Account.Me)
	}

	watchlistRoutes := router.Group("v1/watchlist", auth)
	{
		watchlistRoutes.Get("/", h.Watchlist.GetWatchlist)
		watchlistRoutes.Put("/", h.Watchlist.AddToWatchlist)
		watchlistRoutes.Delete("/:showId", h.Watchlist.RemoveFromWatchlist)
	}

	reviewRoutes := router.Group("v1/reviews", auth)
	{
		reviewRoutes.Get("/", h.Review.GetMyReviews)
		reviewRoutes.Put("/", h.Review.SaveReview)
		reviewRoutes.Delete("/:showId", h.Review.DeleteReview)
	}
	router.Get("v1/favorites", auth, h.Review.GetFavorites)

	playlistRoutes := router.Group("v1/playlists", auth)
	{
		playlistRoutes.Get("/", h.Playlist.GetPlaylists)
		playlistRoutes.Post("/", h.Playlist.CreatePlaylist)
		playlistRoutes.Delete("/:playlistId", h.Playlist.DeletePlaylist)
		playlistRoutes.Get("/:playlistId/items", h.Playlist.GetPlaylistItems)
		playlistRoutes.Put("/:playlistId/items", h.Playlist.AddToPlaylist)
		playlistRoutes.Delete("/:playlistId/items/:showId", h.Playlist.RemoveFromPlaylist)
		playlistRoutes.Put("/:playlistId/recount", h.Playlist.RecountPlaylist)
	}

	showRoutes := router.Group("v1/shows")
	{
		showRoutes.Get("/:showId/status", optionalAuth, h.Show.GetShowStatus)
		showRoutes.Get("/:showId/reviews", h.Show.GetShowReviews)
	}

	catalogRoutes := router.Group("v1/catalog")
	{
		catalogRoutes.Get("/discover", h.Show.Discover)
		catalogRoutes.Get("/search", h.Show.Search)
		catalogRoutes.Get("/shows/:showId", h.Show.GetShow)
	}

	profileRoutes := router.Group("v1/profile", auth)
	{
		profileRoutes.Get("/", h.Profile.GetProfile)
		profileRoutes.Put("/", h.Profile.UpdateProfile)
	}

	adminRoutes := router.Group("v1/admin", auth, middleware.AdminMiddleware)
	{
		adminRoutes.Get("/fetch_configs", h.Admin.FetchDbConfigs)
		adminRoutes.Get("/configs", h.Admin.GetDbConfigs)
		adminRoutes.Put("/users/:userId/playlists/recount", h.Admin.RecountUserPlaylists)
		adminRoutes.Delete("/cache/shows/:showId", h.Admin.InvalidateShowCache)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func Shutdown() error {
	if router == nil {
		return nil
	}
	return router.Shutdown()
}

// timeoutMiddleware bounds the request context handed to services through
// c.UserContext() and answers 504 when the deadline was hit.
func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		c.SetUserContext(ctx)

		defer func() {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				_ = response.ResponseError(c, "Request timeout", fiber.StatusGatewayTimeout)
			}
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
