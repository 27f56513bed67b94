// Package server exposes the learning engine over a REST API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cuentaconmigo/conmigo/internal/adaptive"
	"github.com/cuentaconmigo/conmigo/internal/auth"
	"github.com/cuentaconmigo/conmigo/internal/lessons"
	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/progress"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

// Options holds the services and repos the server routes to.
type Options struct {
	Auth      *auth.Service
	Lessons   *lessons.Service
	Progress  *progress.Service
	Adaptive  *adaptive.Service
	Generator *problemgen.Generator
	Attempts  store.AttemptRepo
	Settings  store.SettingsRepo

	AllowOrigins []string
}

// Server wraps the gin engine.
type Server struct {
	engine *gin.Engine
}

// New builds the router with all API routes registered.
func New(opts Options) *Server {
	r := gin.Default()

	origins := opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := &AuthHandler{Service: opts.Auth}
	lessonHandler := &LessonHandler{Service: opts.Lessons}
	problemHandler := &ProblemHandler{
		Adaptive:  opts.Adaptive,
		Generator: opts.Generator,
		Attempts:  opts.Attempts,
	}
	progressHandler := &ProgressHandler{Service: opts.Progress}
	settingsHandler := &SettingsHandler{Settings: opts.Settings}

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	api.GET("/lessons", lessonHandler.List)
	api.GET("/lessons/:id", lessonHandler.Get)

	authed := api.Group("", RequireAuth(opts.Auth))
	{
		authed.POST("/lessons", lessonHandler.Create)
		authed.PUT("/lessons/:id", lessonHandler.Update)
		authed.DELETE("/lessons/:id", lessonHandler.Delete)

		authed.GET("/problems/next", problemHandler.Next)
		authed.POST("/problems/attempts", problemHandler.RecordAttempt)

		authed.GET("/progress", progressHandler.Get)
		authed.POST("/progress/complete", progressHandler.Complete)
		authed.POST("/progress/reset", progressHandler.Reset)
		authed.GET("/achievements", progressHandler.Achievements)

		authed.GET("/settings/accessibility", settingsHandler.Get)
		authed.PUT("/settings/accessibility", settingsHandler.Save)
	}

	return &Server{engine: r}
}

// Handler returns the http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
