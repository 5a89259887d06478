package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/fleet-inventory-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/service"
)

// imageField is the multipart field carrying the compartment photo.
const imageField = "image"

type AnalysisService interface {
	AnalyzeImage(ctx context.Context, img []byte) (domain.VisionResult, error)
	CheckInventory(ctx context.Context, img []byte) (domain.VisionResult, []domain.InventoryStatus, error)
}

type AnalysisHandler struct {
	svc            AnalysisService
	maxUploadBytes int64
}

func NewAnalysisHandler(svc AnalysisService, maxUploadBytes int64) *AnalysisHandler {
	return &AnalysisHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleVisionAnalysis godoc
// @Summary      Analyze a compartment image
// @Description  Sends the uploaded image to the annotation service and returns labels, objects and text
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Compartment photo"
// @Success      200    {object}  response.Analysis
// @Failure      400    {object}  response.Err
// @Failure      413    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /vision-analysis [post]
func (h *AnalysisHandler) HandleVisionAnalysis(ctx *gin.Context) {
	img, respErr := h.readImage(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.AnalyzeImage(ctx.Request.Context(), img)
	if err != nil {
		response.RenderErr(ctx, analysisErr(fmt.Errorf("HandleVisionAnalysis -> h.svc.AnalyzeImage -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.Analysis{
		Success: true,
		Results: result,
	})
}

// HandleInventoryCheck godoc
// @Summary      Check a compartment against the expected inventory
// @Description  Analyzes the uploaded image and reports, per registered item, how many were detected and its stock status
// @Tags         analysis,inventory
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Compartment photo"
// @Success      200    {object}  response.InventoryCheck
// @Failure      400    {object}  response.Err
// @Failure      413    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /inventory/analysis [post]
func (h *AnalysisHandler) HandleInventoryCheck(ctx *gin.Context) {
	img, respErr := h.readImage(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, statuses, err := h.svc.CheckInventory(ctx.Request.Context(), img)
	if err != nil {
		response.RenderErr(ctx, analysisErr(fmt.Errorf("HandleInventoryCheck -> h.svc.CheckInventory -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.InventoryCheck{
		Success:         true,
		Results:         result,
		InventoryStatus: response.NewInventoryStatuses(statuses),
	})
}

func (h *AnalysisHandler) readImage(ctx *gin.Context) ([]byte, *response.Err) {
	if h.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxUploadBytes)
	}

	header, err := ctx.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, response.ErrRequestTooLarge(err)
		}
		return nil, response.ErrMissingImage(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, response.ErrInternalServerError(fmt.Errorf("header.Open -> %w", err))
	}
	defer file.Close()

	img, err := io.ReadAll(file)
	if err != nil {
		return nil, response.ErrInternalServerError(fmt.Errorf("io.ReadAll -> %w", err))
	}

	return img, nil
}

func analysisErr(err error) *response.Err {
	if errors.Is(err, service.ErrInvalidImage) {
		return response.ErrMissingImage(err)
	}

	return response.ErrImageProcessing(err)
}
