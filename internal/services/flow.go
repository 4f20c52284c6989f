package services

import (
	"context"
	"log"

	"alfredoptarigan/interview-coach/internal/llm"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/prompts"
	"alfredoptarigan/interview-coach/internal/schemas"
)

// promptRequest is a request record whose fields fill a prompt template.
type promptRequest interface {
	PromptVars() map[string]string
}

// flow turns one request record into one result record with a single model
// call. All three coaching operations are flows.
type flow[Req promptRequest, Res any] struct {
	operation models.Operation
	input     schemas.Contract
	output    schemas.Contract
	template  string
	client    llm.Client
	finish    func(*Res)
}

func (f *flow[Req, Res]) render(req Req) string {
	return prompts.Format(f.template, req.PromptVars())
}

// decode validates untrusted request JSON against the input contract.
func (f *flow[Req, Res]) decode(raw []byte) (Req, error) {
	var req Req
	if err := schemas.Decode(f.input, raw, &req); err != nil {
		return req, &models.ValidationFailure{Operation: f.operation, Err: err}
	}
	return req, nil
}

func (f *flow[Req, Res]) run(ctx context.Context, req Req) (*Res, error) {
	prompt := f.render(req)
	log.Printf("🤖 %s: sending prompt (%d characters)", f.operation, len(prompt))

	response, err := f.client.GenerateJSON(ctx, prompt, f.output)
	if err != nil {
		log.Printf("❌ %s: model call failed: %v", f.operation, err)
		return nil, &models.GenerationFailure{Operation: f.operation, Err: err}
	}

	log.Printf("✅ %s: response received (%d characters)", f.operation, len(response))

	var result Res
	if err := schemas.Decode(f.output, []byte(response), &result); err != nil {
		log.Printf("❌ %s: response rejected: %v", f.operation, err)
		return nil, &models.GenerationFailure{Operation: f.operation, Err: err}
	}

	if f.finish != nil {
		f.finish(&result)
	}

	return &result, nil
}

func (f *flow[Req, Res]) runJSON(ctx context.Context, raw []byte) (*Res, error) {
	req, err := f.decode(raw)
	if err != nil {
		return nil, err
	}
	return f.run(ctx, req)
}

func (f *flow[Req, Res]) renderJSON(raw []byte) (string, error) {
	req, err := f.decode(raw)
	if err != nil {
		return "", err
	}
	return f.render(req), nil
}
