package models

type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   int          `json:"code"`
	Kind   string       `json:"kind"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PromptResponse struct {
	Operation string `json:"operation"`
	Prompt    string `json:"prompt"`
}

type UploadedDocument struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	Characters   int    `json:"characters"`
}

type UploadPlanResponse struct {
	Document UploadedDocument       `json:"document"`
	Result   *ImprovementPlanResult `json:"result"`
}
