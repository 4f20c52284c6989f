package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

const jobDescriptionFileType = "job_description"

type UploadHandler struct {
	coach          services.CoachService
	storageService services.StorageService
	parser         services.DocumentParserService
	maxFileSize    int64
}

func NewUploadHandler(
	coach services.CoachService,
	storageService services.StorageService,
	parser services.DocumentParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		coach:          coach,
		storageService: storageService,
		parser:         parser,
		maxFileSize:    maxFileSize,
	}
}

// HandleImprovementPlanUpload handles POST /improvement-plan/upload. The job
// description arrives as a document; its text fills the jobDescription field.
func (h *UploadHandler) HandleImprovementPlanUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "failed to parse multipart form")
	}

	files, exists := form.File["jobDescription"]
	if !exists || len(files) == 0 {
		return badRequest(c, "No job description uploaded. Please upload 'jobDescription' as a PDF, DOCX or TXT file.")
	}
	file := files[0]

	if file.Size > h.maxFileSize {
		return badRequest(c, fmt.Sprintf("Job description file too large. Max size: %d bytes", h.maxFileSize))
	}

	filename, filePath, err := h.storageService.SaveFile(file, jobDescriptionFileType)
	if err != nil {
		var unsupported *services.UnsupportedFileError
		if errors.As(err, &unsupported) {
			return badRequest(c, unsupported.Error())
		}
		return RespondError(c, fmt.Errorf("failed to save job description: %w", err))
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Printf("⚠️ Failed to remove upload %s: %v", filename, err)
		}
	}()

	content, err := h.parser.ExtractText(filePath)
	if err != nil {
		return badRequest(c, fmt.Sprintf("failed to read job description: %v", err))
	}

	// A missing rejectionReason stays missing so the contract reports it.
	fields := map[string]string{"jobDescription": content.Text}
	if reasons, ok := form.Value["rejectionReason"]; ok && len(reasons) > 0 {
		fields["rejectionReason"] = reasons[0]
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return RespondError(c, err)
	}

	result, err := h.coach.GenerateImprovementPlanJSON(c.UserContext(), raw)
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(models.UploadPlanResponse{
		Document: models.UploadedDocument{
			Filename:     filename,
			OriginalName: file.Filename,
			FileType:     jobDescriptionFileType,
			Characters:   len(content.Text),
		},
		Result: result,
	})
}
