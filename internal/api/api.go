package api

import (
	"strings"

	"adventure-server/internal/apierrors"
	apilogsHandler "adventure-server/internal/apilogs/handler"
	docsHandler "adventure-server/internal/docs/handler"
	eventsHandler "adventure-server/internal/events/handler"
	healthHandler "adventure-server/internal/health/handler"
	newsletterHandler "adventure-server/internal/newsletter/handler"
	partnersHandler "adventure-server/internal/partners/handler"
	usersHandler "adventure-server/internal/users/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Health     healthHandler.Handler
	Docs       docsHandler.Handler
	Users      usersHandler.Handler
	Partners   partnersHandler.Handler
	Events     eventsHandler.Handler
	Newsletter newsletterHandler.Handler
	Logs       apilogsHandler.Handler
}

type API struct {
	router     *gin.Engine
	apiVersion string
	handlers   Handlers
	middleware []gin.HandlerFunc
}

// New creates the API. middleware applies to every request under /api,
// including paths that match no route.
func New(router *gin.Engine, apiVersion string, handlers Handlers, middleware ...gin.HandlerFunc) API {
	return API{
		router:     router,
		apiVersion: apiVersion,
		handlers:   handlers,
		middleware: middleware,
	}
}

func (a *API) RegisterRoutes() {
	// engine level so NoRoute handlers get it too
	for _, mw := range a.middleware {
		a.router.Use(underAPI(mw))
	}

	a.router.GET("/", a.handlers.Health.HandleRoot)
	a.router.GET("/health", a.handlers.Health.HandleHealth)

	apiGroup := a.router.Group("/api")
	apiGroup.GET("/docs", a.handlers.Docs.HandleUI)
	apiGroup.GET("/docs/openapi.json", a.handlers.Docs.HandleJSON)
	apiGroup.GET("/docs/openapi.yaml", a.handlers.Docs.HandleYAML)
	apiGroup.GET("/docs/swagger-initializer.js", a.handlers.Docs.HandleInitializer)

	v := apiGroup.Group("/" + a.apiVersion)
	{
		v.GET("/health", a.handlers.Health.HandleHealth)

		usersGroup := v.Group("/users")
		usersGroup.POST("/register", a.handlers.Users.HandleRegister)
		usersGroup.GET("/verify/:token", a.handlers.Users.HandleVerify)
		usersGroup.GET("/stats", a.handlers.Users.HandleStats)

		partnersGroup := v.Group("/partners")
		partnersGroup.POST("/register", a.handlers.Partners.HandleRegister)
		partnersGroup.GET("", a.handlers.Partners.HandleList)
		partnersGroup.GET("/stats", a.handlers.Partners.HandleStats)
		partnersGroup.GET("/:id", a.handlers.Partners.HandleGet)
		partnersGroup.PATCH("/:id/status", a.handlers.Partners.HandleUpdateStatus)

		eventsGroup := v.Group("/events")
		eventsGroup.POST("/register", a.handlers.Events.HandleRegister)
		eventsGroup.GET("/registrations", a.handlers.Events.HandleListRegistrations)
		eventsGroup.DELETE("/registrations/:id", a.handlers.Events.HandleCancel)
		eventsGroup.GET("/stats", a.handlers.Events.HandleStats)

		v.POST("/newsletter/subscribe", a.handlers.Newsletter.HandleSubscribe)

		logsGroup := v.Group("/logs")
		logsGroup.GET("", a.handlers.Logs.HandleList)
		logsGroup.GET("/stats", a.handlers.Logs.HandleStats)
		logsGroup.GET("/errors", a.handlers.Logs.HandleErrors)
		logsGroup.POST("/track", a.handlers.Logs.HandleTrack)
	}

	a.router.NoRoute(apierrors.NoRoute)
}

func underAPI(mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			mw(c)
		}
	}
}
