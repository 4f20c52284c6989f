package models

// Operation names one of the coaching flows.
type Operation string

const (
	OperationFeedback        Operation = "feedback"
	OperationImprovementPlan Operation = "improvement-plan"
	OperationCheatSheet      Operation = "cheat-sheet"
)

// Operations lists every flow in the order the API documents them.
var Operations = []Operation{
	OperationFeedback,
	OperationImprovementPlan,
	OperationCheatSheet,
}

// CheatSheetProgress is returned with every generated cheat sheet.
const CheatSheetProgress = "Generated a cheat sheet summarizing key concepts and tips for future interviews."

type FeedbackRequest struct {
	Company         string `json:"company"`
	Round           string `json:"round"`
	RejectionReason string `json:"rejectionReason"`
}

func (r FeedbackRequest) PromptVars() map[string]string {
	return map[string]string{
		"Company":         r.Company,
		"Round":           r.Round,
		"RejectionReason": r.RejectionReason,
	}
}

type FeedbackResult struct {
	Feedback        string `json:"feedback"`
	ImprovementPlan string `json:"improvementPlan"`
	CheatSheet      string `json:"cheatSheet"`
}

type ImprovementPlanRequest struct {
	RejectionReason string `json:"rejectionReason"`
	JobDescription  string `json:"jobDescription"`
}

func (r ImprovementPlanRequest) PromptVars() map[string]string {
	return map[string]string{
		"RejectionReason": r.RejectionReason,
		"JobDescription":  r.JobDescription,
	}
}

type ImprovementPlanResult struct {
	ImprovementPlan string `json:"improvementPlan"`
}

type CheatSheetRequest struct {
	RejectionReasons     string `json:"rejectionReasons"`
	InterviewExperiences string `json:"interviewExperiences"`
}

func (r CheatSheetRequest) PromptVars() map[string]string {
	return map[string]string{
		"RejectionReasons":     r.RejectionReasons,
		"InterviewExperiences": r.InterviewExperiences,
	}
}

// CheatSheetResult carries Progress, which is set locally and never requested
// from the model.
type CheatSheetResult struct {
	CheatSheet string `json:"cheatSheet"`
	Progress   string `json:"progress"`
}
