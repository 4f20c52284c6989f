package services

import (
	"context"
	"errors"
	"fmt"

	"alfredoptarigan/interview-coach/internal/llm"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/prompts"
	"alfredoptarigan/interview-coach/internal/schemas"
)

var ErrUnknownOperation = errors.New("unknown operation")

type CoachService interface {
	GenerateFeedback(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResult, error)
	GenerateImprovementPlan(ctx context.Context, req models.ImprovementPlanRequest) (*models.ImprovementPlanResult, error)
	GenerateCheatSheet(ctx context.Context, req models.CheatSheetRequest) (*models.CheatSheetResult, error)

	// The JSON variants validate untrusted input before any model call.
	GenerateFeedbackJSON(ctx context.Context, raw []byte) (*models.FeedbackResult, error)
	GenerateImprovementPlanJSON(ctx context.Context, raw []byte) (*models.ImprovementPlanResult, error)
	GenerateCheatSheetJSON(ctx context.Context, raw []byte) (*models.CheatSheetResult, error)

	// RenderPrompt validates raw and returns the prompt the operation would
	// send, without calling the model.
	RenderPrompt(op models.Operation, raw []byte) (string, error)
}

type coachService struct {
	feedback        *flow[models.FeedbackRequest, models.FeedbackResult]
	improvementPlan *flow[models.ImprovementPlanRequest, models.ImprovementPlanResult]
	cheatSheet      *flow[models.CheatSheetRequest, models.CheatSheetResult]
}

func NewCoachService(client llm.Client) CoachService {
	return &coachService{
		feedback: &flow[models.FeedbackRequest, models.FeedbackResult]{
			operation: models.OperationFeedback,
			input:     schemas.FeedbackRequest,
			output:    schemas.FeedbackResult,
			template:  prompts.MustGet(prompts.File, prompts.KeyInterviewFeedback),
			client:    client,
		},
		improvementPlan: &flow[models.ImprovementPlanRequest, models.ImprovementPlanResult]{
			operation: models.OperationImprovementPlan,
			input:     schemas.ImprovementPlanRequest,
			output:    schemas.ImprovementPlanResult,
			template:  prompts.MustGet(prompts.File, prompts.KeyImprovementPlan),
			client:    client,
		},
		cheatSheet: &flow[models.CheatSheetRequest, models.CheatSheetResult]{
			operation: models.OperationCheatSheet,
			input:     schemas.CheatSheetRequest,
			output:    schemas.CheatSheetOutput,
			template:  prompts.MustGet(prompts.File, prompts.KeyCheatSheet),
			client:    client,
			finish: func(res *models.CheatSheetResult) {
				res.Progress = models.CheatSheetProgress
			},
		},
	}
}

func (s *coachService) GenerateFeedback(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResult, error) {
	return s.feedback.run(ctx, req)
}

func (s *coachService) GenerateImprovementPlan(ctx context.Context, req models.ImprovementPlanRequest) (*models.ImprovementPlanResult, error) {
	return s.improvementPlan.run(ctx, req)
}

func (s *coachService) GenerateCheatSheet(ctx context.Context, req models.CheatSheetRequest) (*models.CheatSheetResult, error) {
	return s.cheatSheet.run(ctx, req)
}

func (s *coachService) GenerateFeedbackJSON(ctx context.Context, raw []byte) (*models.FeedbackResult, error) {
	return s.feedback.runJSON(ctx, raw)
}

func (s *coachService) GenerateImprovementPlanJSON(ctx context.Context, raw []byte) (*models.ImprovementPlanResult, error) {
	return s.improvementPlan.runJSON(ctx, raw)
}

func (s *coachService) GenerateCheatSheetJSON(ctx context.Context, raw []byte) (*models.CheatSheetResult, error) {
	return s.cheatSheet.runJSON(ctx, raw)
}

func (s *coachService) RenderPrompt(op models.Operation, raw []byte) (string, error) {
	switch op {
	case models.OperationFeedback:
		return s.feedback.renderJSON(raw)
	case models.OperationImprovementPlan:
		return s.improvementPlan.renderJSON(raw)
	case models.OperationCheatSheet:
		return s.cheatSheet.renderJSON(raw)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}
