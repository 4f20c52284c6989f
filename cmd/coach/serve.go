package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/handlers"
	"alfredoptarigan/interview-coach/internal/llm"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Println("✅ Config loaded successfully")

	storageService := services.NewStorageService(cfg.Storage.UploadPath, services.SupportedDocumentExtensions)
	if err := storageService.EnsureUploadDir(); err != nil {
		return err
	}
	documentParser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	geminiClient, err := llm.NewGeminiClient(cmd.Context(), cfg.LLM())
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model %s)", cfg.Gemini.Model)

	coachService := services.NewCoachService(geminiClient)

	coachHandler := handlers.NewCoachHandler(coachService)
	uploadHandler := handlers.NewUploadHandler(
		coachService,
		storageService,
		documentParser,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	app := newApp(cfg, coachHandler, uploadHandler)

	go func() {
		<-cmd.Context().Done()
		log.Println("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func newApp(cfg *config.Config, coachHandler *handlers.CoachHandler, uploadHandler *handlers.UploadHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Interview Coach API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	handlers.Register(app.Group("/api/v1"), coachHandler, uploadHandler)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Interview Coach API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/feedback",
				"POST /api/v1/improvement-plan",
				"POST /api/v1/improvement-plan/upload",
				"POST /api/v1/cheat-sheet",
				"POST /api/v1/prompts/:operation",
			},
			"operations": models.Operations,
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	return handlers.RespondError(c, err)
}
