package schemas

// Field is a required string property of a contract.
type Field struct {
	Name        string
	Description string
}

// Contract is a named set of required string fields. Every request and every
// model reply in the service is described by one.
type Contract struct {
	Name        string
	Description string
	Fields      []Field
}

// FieldNames returns the field names in declaration order.
func (c Contract) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}

// JSONSchema renders the contract as a draft-07 JSON Schema document.
func (c Contract) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(c.Fields))
	required := make([]interface{}, 0, len(c.Fields))
	for _, f := range c.Fields {
		properties[f.Name] = map[string]interface{}{
			"type":        "string",
			"description": f.Description,
		}
		required = append(required, f.Name)
	}

	return map[string]interface{}{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"title":      c.Name,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

var FeedbackRequest = Contract{
	Name:        "FeedbackRequest",
	Description: "Details of a rejected interview.",
	Fields: []Field{
		{Name: "company", Description: "The name of the company where the interview took place."},
		{Name: "round", Description: "The round of the interview (e.g., first round, technical interview, final round)."},
		{Name: "rejectionReason", Description: "The reason provided for the rejection after the interview."},
	},
}

var FeedbackResult = Contract{
	Name:        "FeedbackResult",
	Description: "Coaching produced for a rejected interview.",
	Fields: []Field{
		{Name: "feedback", Description: "Personalized feedback based on the rejection reason."},
		{Name: "improvementPlan", Description: "An action plan for improving performance in future interviews."},
		{Name: "cheatSheet", Description: "A cheat sheet with key concepts and tips related to the interview."},
	},
}

var ImprovementPlanRequest = Contract{
	Name:        "ImprovementPlanRequest",
	Description: "A rejection reason paired with the job it was for.",
	Fields: []Field{
		{Name: "rejectionReason", Description: "The reason for the interview rejection provided by the company."},
		{Name: "jobDescription", Description: "The job description for the role applied for."},
	},
}

var ImprovementPlanResult = Contract{
	Name:        "ImprovementPlanResult",
	Description: "A tailored improvement plan.",
	Fields: []Field{
		{Name: "improvementPlan", Description: "A detailed, tailored improvement plan including specific action items and resources to address the weaknesses identified in the rejection reason."},
	},
}

var CheatSheetRequest = Contract{
	Name:        "CheatSheetRequest",
	Description: "Summaries of past interviews.",
	Fields: []Field{
		{Name: "rejectionReasons", Description: "A summary of the rejection reasons from past interviews."},
		{Name: "interviewExperiences", Description: "A summary of the user's past interview experiences."},
	},
}

// CheatSheetOutput is what the model is asked for. The progress field of
// CheatSheetResult is filled in locally.
var CheatSheetOutput = Contract{
	Name:        "CheatSheetOutput",
	Description: "A concise interview preparation cheat sheet.",
	Fields: []Field{
		{Name: "cheatSheet", Description: "A concise cheat sheet for interview preparation."},
	},
}

var CheatSheetResult = Contract{
	Name:        "CheatSheetResult",
	Description: "A cheat sheet and a summary of what was generated.",
	Fields: []Field{
		{Name: "cheatSheet", Description: "A concise cheat sheet for interview preparation."},
		{Name: "progress", Description: "Summary of what has been generated"},
	},
}
