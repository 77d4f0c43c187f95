// Package server wires configuration, middleware and handlers into the HTTP
// routing surface.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/party-rsvp/backend/config"
	"github.com/party-rsvp/backend/internal/admin"
	"github.com/party-rsvp/backend/internal/middleware"
	"github.com/party-rsvp/backend/internal/rsvps"
	"github.com/party-rsvp/backend/internal/store"
	"github.com/party-rsvp/backend/pkg/response"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	sessions := admin.NewSessionService(cfg.Admin.SessionSecret, cfg.Admin.SessionHours, logger)
	adminHandler := admin.NewHandler(cfg.Admin.PIN, sessions, logger)

	storeClient := store.New(cfg.Store)
	window := time.Duration(cfg.Admin.ThrottleWindow) * time.Minute
	rsvpHandler := rsvps.NewHandler(storeClient, window, logger)

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.HandleMethodNotAllowed = true
	router.NoMethod(response.MethodNotAllowed)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/login", adminHandler.Login)
	router.POST("/logout", adminHandler.Logout)

	requireAdmin := middleware.RequireAdmin(sessions)
	router.GET("/registrations", requireAdmin, rsvpHandler.List)
	router.POST("/registrations", rsvpHandler.Create)
	router.DELETE("/registrations", requireAdmin, rsvpHandler.Delete)

	router.GET("/count", rsvpHandler.Count)

	return router
}
