package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cuentaconmigo/conmigo/internal/adaptive"
	"github.com/cuentaconmigo/conmigo/internal/auth"
	"github.com/cuentaconmigo/conmigo/internal/config"
	"github.com/cuentaconmigo/conmigo/internal/lessons"
	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/progress"
	"github.com/cuentaconmigo/conmigo/internal/server"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds services and listens.
func runServe(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	attempts := st.AttemptRepo()
	srv := server.New(server.Options{
		Auth:         auth.NewService(st.UserRepo(), []byte(cfg.JWTSecret), cfg.TokenTTL),
		Lessons:      lessons.NewService(st.LessonRepo()),
		Progress:     progress.NewService(st.ProgressRepo()),
		Adaptive:     adaptive.NewService(attempts),
		Generator:    problemgen.New(),
		Attempts:     attempts,
		Settings:     st.SettingsRepo(),
		AllowOrigins: cfg.AllowOrigins,
	})

	log.Printf("listening on :%s (db %s)", cfg.Port, dbPath)
	return srv.Run(":" + cfg.Port)
}
