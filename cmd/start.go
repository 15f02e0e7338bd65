package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"codecheck/core/config"
	"codecheck/core/debug"
	"codecheck/core/loader"
	"codecheck/core/logger"
	"codecheck/core/middleware/auth"
	"codecheck/core/middleware/rayid"
	"codecheck/feature/checker"
	"codecheck/feature/checker/checks"
	"codecheck/feature/greeter"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "codecheck/docs/swagger"
)

// @title codecheck API
// @version 1.0
// @description Greeting endpoint and structural check API.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the greeter server",
	Long:  `Starts the HTTP server, serving the greeting and the check API.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		// 3. Attach the remote debug stream when running under the
		// live-reload supervisor. The sink endpoint is fixed; a failed
		// attach is fatal at startup.
		if cfg.Server.Reloader {
			var attacher debug.Attacher = debug.TCPAttacher{}
			sink, err := attacher.Attach(debug.Host, debug.Port)
			if err != nil {
				logg.Fatal("Failed to attach debug stream", zap.Error(err))
			}
			defer sink.Close()
			logg = logger.Tee(logg, sink)
			logg.Info("Debug stream attached", zap.String("host", debug.Host), zap.Int("port", debug.Port))
		}
		zap.ReplaceGlobals(logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Public features: the greeting must answer regardless of headers,
		// so it loads before auth.
		public := loader.NewManager()
		public.Register(greeter.NewFeature(logg))
		if err := public.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Auth protects the check API.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		protected := loader.NewManager()
		protected.Register(checker.NewFeature(afero.NewOsFs(), checks.Default(), logg))
		if err := protected.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen("0.0.0.0:" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
