package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Register mounts the coaching API on router.
func Register(router fiber.Router, coach *CoachHandler, upload *UploadHandler) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	router.Post("/feedback", coach.HandleFeedback)
	router.Post("/improvement-plan", coach.HandleImprovementPlan)
	router.Post("/improvement-plan/upload", upload.HandleImprovementPlanUpload)
	router.Post("/cheat-sheet", coach.HandleCheatSheet)
	router.Post("/prompts/:operation", coach.HandlePrompt)
}
