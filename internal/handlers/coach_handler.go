package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type CoachHandler struct {
	coach services.CoachService
}

func NewCoachHandler(coach services.CoachService) *CoachHandler {
	return &CoachHandler{coach: coach}
}

// HandleFeedback handles POST /feedback
func (h *CoachHandler) HandleFeedback(c *fiber.Ctx) error {
	result, err := h.coach.GenerateFeedbackJSON(c.UserContext(), c.Body())
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(result)
}

// HandleImprovementPlan handles POST /improvement-plan
func (h *CoachHandler) HandleImprovementPlan(c *fiber.Ctx) error {
	result, err := h.coach.GenerateImprovementPlanJSON(c.UserContext(), c.Body())
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(result)
}

// HandleCheatSheet handles POST /cheat-sheet
func (h *CoachHandler) HandleCheatSheet(c *fiber.Ctx) error {
	result, err := h.coach.GenerateCheatSheetJSON(c.UserContext(), c.Body())
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(result)
}

// HandlePrompt handles POST /prompts/:operation. It renders the prompt the
// operation would send and never calls the model.
func (h *CoachHandler) HandlePrompt(c *fiber.Ctx) error {
	op := models.Operation(c.Params("operation"))

	prompt, err := h.coach.RenderPrompt(op, c.Body())
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(models.PromptResponse{
		Operation: string(op),
		Prompt:    prompt,
	})
}
