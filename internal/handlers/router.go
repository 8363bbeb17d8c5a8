package handlers

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Sessions    *services.SessionStore
	Review      *services.ReviewService
	Digest      *services.DigestService
	Registry    *prometheus.Registry
	CORSOrigins string
	Logger      *zap.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), AccessLog(d.Logger), NewRequestMetrics(d.Registry).Build())

	config := cors.DefaultConfig()
	if d.CORSOrigins == "" || d.CORSOrigins == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(d.CORSOrigins, ",")
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(config))

	sessions := NewSessionHandler(d.Sessions, d.Logger)
	admin := NewAdminHandler(d.Sessions, d.Review, d.Digest, d.Logger)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/catalog", Catalog)

		// Form routes
		api.POST("/sessions", sessions.Create)
		api.GET("/sessions/:id", sessions.Get)
		api.PATCH("/sessions/:id/fields", sessions.UpdateField)
		api.POST("/sessions/:id/sales-types/:type", sessions.ToggleSalesType)
		api.POST("/sessions/:id/languages", sessions.AddLanguage)
		api.PUT("/sessions/:id/languages/:lang", sessions.SetLanguageLevel)
		api.DELETE("/sessions/:id/languages/:lang", sessions.RemoveLanguage)
		api.POST("/sessions/:id/submit", sessions.Submit)

		// Navigation
		api.POST("/sessions/:id/hr", sessions.OpenLogin)
		api.POST("/sessions/:id/login", sessions.Login)
		api.POST("/sessions/:id/back", sessions.Back)
		api.POST("/sessions/:id/restart", sessions.StartOver)

		// HR review
		api.GET("/sessions/:id/applications", admin.List)
		api.GET("/sessions/:id/applications/:appID/digest", admin.ShowDigest)
		api.GET("/sessions/:id/export", admin.Export)
	}
	return r
}
