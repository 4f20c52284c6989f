package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/llm"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

// requestFlag binds one command-line flag to one request field.
type requestFlag struct {
	name  string
	field string
	usage string
}

type operationCommand struct {
	operation models.Operation
	short     string
	flags     []requestFlag
}

var operationCommands = []operationCommand{
	{
		operation: models.OperationFeedback,
		short:     "Generate feedback, an improvement plan and a cheat sheet for one rejection",
		flags: []requestFlag{
			{name: "company", field: "company", usage: "Company name"},
			{name: "round", field: "round", usage: "Interview round"},
			{name: "rejection-reason", field: "rejectionReason", usage: "Reason for rejection"},
		},
	},
	{
		operation: models.OperationImprovementPlan,
		short:     "Generate an improvement plan for a role",
		flags: []requestFlag{
			{name: "rejection-reason", field: "rejectionReason", usage: "Reason for rejection"},
			{name: "job-description", field: "jobDescription", usage: "Job description text"},
		},
	},
	{
		operation: models.OperationCheatSheet,
		short:     "Generate a cheat sheet from past interviews",
		flags: []requestFlag{
			{name: "rejection-reasons", field: "rejectionReasons", usage: "Reasons for rejection"},
			{name: "interview-experiences", field: "interviewExperiences", usage: "Past interview experiences"},
		},
	},
}

type generateOptions struct {
	values             map[string]*string
	jobDescriptionFile string
	outputFile         string
	apiKey             string
	dryRun             bool
}

func init() {
	for _, op := range operationCommands {
		rootCmd.AddCommand(newOperationCommand(op))
	}
}

func newOperationCommand(op operationCommand) *cobra.Command {
	opts := &generateOptions{values: make(map[string]*string, len(op.flags))}

	cmd := &cobra.Command{
		Use:   string(op.operation),
		Short: op.short,
		Long:  op.short + ". Flags that are not given are left out of the request, so the request contract reports them as missing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperation(cmd, op, opts)
		},
	}

	for _, f := range op.flags {
		opts.values[f.field] = cmd.Flags().String(f.name, "", f.usage)
	}
	if op.operation == models.OperationImprovementPlan {
		cmd.Flags().StringVar(&opts.jobDescriptionFile, "job-description-file", "", "Read the job description from a PDF, DOCX or TXT file")
		cmd.MarkFlagsMutuallyExclusive("job-description", "job-description-file")
	}
	cmd.Flags().StringVarP(&opts.outputFile, "out", "o", "", "Write the result JSON to this file instead of stdout")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the rendered prompt without calling the model")

	return cmd
}

// buildRequest encodes the flags that were set as the request document.
func buildRequest(cmd *cobra.Command, op operationCommand, opts *generateOptions) ([]byte, error) {
	fields := make(map[string]string, len(op.flags))
	for _, f := range op.flags {
		if cmd.Flags().Changed(f.name) {
			fields[f.field] = *opts.values[f.field]
		}
	}

	if opts.jobDescriptionFile != "" {
		content, err := services.NewDocumentParserService().ExtractText(opts.jobDescriptionFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read job description: %w", err)
		}
		fields["jobDescription"] = content.Text
	}

	return json.Marshal(fields)
}

func runOperation(cmd *cobra.Command, op operationCommand, opts *generateOptions) error {
	raw, err := buildRequest(cmd, op, opts)
	if err != nil {
		return err
	}

	if opts.dryRun {
		prompt, err := services.NewCoachService(nil).RenderPrompt(op.operation, raw)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return err
	}

	cfg := config.Load()
	if opts.apiKey != "" {
		cfg.Gemini.APIKey = opts.apiKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(cmd.Context(), cfg.LLM())
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}

	result, err := generate(cmd.Context(), services.NewCoachService(client), op.operation, raw)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), opts.outputFile, result)
}

func generate(ctx context.Context, coach services.CoachService, op models.Operation, raw []byte) (any, error) {
	switch op {
	case models.OperationFeedback:
		return coach.GenerateFeedbackJSON(ctx, raw)
	case models.OperationImprovementPlan:
		return coach.GenerateImprovementPlanJSON(ctx, raw)
	case models.OperationCheatSheet:
		return coach.GenerateCheatSheetJSON(ctx, raw)
	default:
		return nil, fmt.Errorf("%w: %q", services.ErrUnknownOperation, op)
	}
}

func writeResult(stdout io.Writer, outputFile string, result any) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outputFile == "" {
		_, err = fmt.Fprintln(stdout, string(jsonBytes))
		return err
	}

	if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
