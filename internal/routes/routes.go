package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"femaqua-be/internal/config"
	"femaqua-be/internal/controllers"
	"femaqua-be/internal/metrics"
	"femaqua-be/internal/middleware"
	"femaqua-be/internal/service"
)

// Deps are the collaborators the router needs
type Deps struct {
	Config      *config.Config
	AuthService service.AuthService
	ToolService service.ToolService
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer // served on /metrics
	Logger      *slog.Logger
}

// Setup builds the HTTP router. The returned func stops the rate limiters'
// background cleanup and should be called on shutdown.
func Setup(d Deps) (*gin.Engine, func()) {
	controllers.RegisterValidation()

	authController := controllers.NewAuthController(d.AuthService, d.Metrics)
	toolController := controllers.NewToolController(d.ToolService, d.Metrics)
	qrcodeController := controllers.NewQRCodeController(d.ToolService, d.Config.QRCodeSize)

	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(d.Config.RateLimitRPS), d.Config.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(d.Config.RateLimitAuthRPS), d.Config.RateLimitAuthBurst)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(d.Metrics.Middleware())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.Use(generalRateLimiter.LimitMiddleware())
	{
		// Stricter limits where passwords are checked or hashed
		v1.POST("/register", authRateLimiter.LimitMiddleware(), authController.Register)
		v1.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(d.AuthService))
		{
			protected.POST("/logout", authController.Logout)

			protected.GET("/tools", toolController.ListTools)
			protected.POST("/tools", toolController.CreateTool)
			protected.GET("/tools/:id", toolController.GetTool)
			protected.PUT("/tools/:id", toolController.UpdateTool)
			protected.DELETE("/tools/:id", toolController.DeleteTool)
			protected.GET("/tools/:id/qrcode", qrcodeController.GenerateQRCode)
		}
	}

	stop := func() {
		generalRateLimiter.Stop()
		authRateLimiter.Stop()
	}
	return router, stop
}
