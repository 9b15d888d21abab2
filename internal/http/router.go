package api

import (
	"log"
	stdhttp "net/http"

	intconfig "orientation/internal/config"
	h "orientation/internal/http/handlers"
	"orientation/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the handlers the router mounts.
type Deps struct {
	Orientation h.OrientationHandler
	System      h.SystemHandler
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.CustomRecovery(h.Recovery),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.AuthOptional(env.JWTSecret),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	// Operational endpoints require an admin or ops token once auth is configured.
	var ops []gin.HandlerFunc
	if env.JWTSecret != "" {
		ops = append(ops, middleware.RequireRoles("admin", "ops"))
	}

	r.GET("/", deps.System.Root)
	r.GET("/health", deps.System.Health)

	api := r.Group("/api")
	{
		api.GET("/health", deps.System.Health)
		api.GET("/db-check", append(ops, deps.System.DBCheck)...)
		api.GET("/routes", append(ops, h.Routes)...)

		orientation := api.Group("/orientation")
		orientation.GET("/health", deps.System.OrientationHealth)
		orientation.GET("/:flight_number/:baggage_id", deps.Orientation.GetOrientation)
		orientation.GET("/:flight_number/:baggage_id/itinerary.pdf", deps.Orientation.GetItineraryPDF)
		orientation.POST("", deps.Orientation.PostOrientation)
		orientation.POST("/", deps.Orientation.PostOrientation)
	}

	h.SetRouter(r)
	return r
}
