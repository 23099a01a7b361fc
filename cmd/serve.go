package cmd

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"timesheet/config"
	"timesheet/database"
	"timesheet/handlers"
	"timesheet/middleware"
	"timesheet/models"
	"timesheet/snapshot"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the timesheet HTTP service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		return err
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	entryHandler := handlers.NewEntryHandler(cfg)
	exportHandler := handlers.NewExportHandler(cfg)
	prefHandler := handlers.NewPreferenceHandler(cfg)
	metaHandler := handlers.NewMetaHandler()

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Post("/login", authHandler.Login)
	router.Get("/weeks", metaHandler.Weeks)
	router.Get("/catalog", metaHandler.Catalog)
	router.Get("/timeslots", metaHandler.Timeslots)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/logout", authHandler.Logout)
		r.Post("/change-password", authHandler.ChangePassword)

		// Timesheet entries
		r.Get("/entries", entryHandler.List)
		r.Post("/entries", entryHandler.Create)
		r.Put("/entries/{id}", entryHandler.Update)
		r.Post("/entries/{id}/duplicate", entryHandler.Duplicate)
		r.Delete("/entries/{id}", entryHandler.Delete)
		r.Delete("/entries", entryHandler.Reset)

		// Derived values and exports
		r.Get("/totals", entryHandler.Totals)
		r.Get("/export/csv", exportHandler.CSV)
		r.Get("/export/email", exportHandler.Email)

		// Session state
		r.Get("/preferences", prefHandler.Get)
		r.Put("/preferences", prefHandler.Put)

		// Admin only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/engineers", authHandler.ListEngineers)
			r.Post("/engineers", authHandler.CreateEngineer)
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Interval autosave of the entry collection
	go snapshot.Run(ctx, cfg.SnapshotDir, cfg.SnapshotInterval, func() ([]models.TimesheetEntry, error) {
		var entries []models.TimesheetEntry
		err := database.GetDB().Order("created_at asc").Find(&entries).Error
		return entries, err
	})

	server := &http.Server{Addr: ":" + cfg.ServerPort, Handler: router}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Default admin credentials: admin / admin")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
