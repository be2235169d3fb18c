package catalog

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/advisor/model"
	"advisor-backend/internal/shared/server/respond"
	"advisor-backend/internal/shared/telemetry"
	"advisor-backend/internal/shared/util"
)

const maxPriceSheetBytes = 5 << 20

// Handler wires HTTP handlers to the catalog service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/categories", h.listCategories)
	rg.GET("/catalog/options", h.listOptions)
	rg.POST("/catalog/entries", h.addEntry)
	rg.POST("/catalog/pricesheets", h.importPriceSheet)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.Svc.Categories(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list categories", nil)
		return
	}
	respond.OK(c, gin.H{"categories": categories})
}

func (h *Handler) listOptions(c *gin.Context) {
	category := c.Query("category")
	if strings.TrimSpace(category) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "category query parameter is required", nil)
		return
	}
	options, err := h.Svc.OptionsFor(c.Request.Context(), category)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list options", nil)
		return
	}
	respond.OK(c, gin.H{"category": strings.ToLower(strings.TrimSpace(category)), "options": options})
}

type addEntryRequest struct {
	Category string                `json:"category"`
	Option   model.CandidateOption `json:"option"`
	Source   string                `json:"source"`
}

func (h *Handler) addEntry(c *gin.Context) {
	var req addEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	entry, err := h.Svc.Add(c.Request.Context(), Entry{
		Category: req.Category,
		Option:   req.Option,
		Source:   req.Source,
	})
	if err != nil {
		var verr model.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), []map[string]string{
				{"field": verr.Field, "issue": verr.Reason},
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store entry", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, entry)
}

func (h *Handler) importPriceSheet(c *gin.Context) {
	category := c.PostForm("category")
	if strings.TrimSpace(category) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "category form field is required", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "price sheet file is required", nil)
		return
	}
	if fileHeader.Size > maxPriceSheetBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "price sheet exceeds the 5MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read price sheet", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPriceSheetBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read price sheet", nil)
		return
	}

	source, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid price sheet file name", nil)
		return
	}

	result, err := ImportPriceSheet(data, category, source)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "could not extract text from the price sheet", nil)
		return
	}

	stored := make([]Entry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		saved, err := h.Svc.Add(c.Request.Context(), entry)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store imported entries", nil)
			return
		}
		stored = append(stored, saved)
	}

	telemetry.Info("catalog.pricesheet_imported", map[string]any{
		"category": strings.ToLower(strings.TrimSpace(category)),
		"entries":  len(stored),
		"skipped":  len(result.Skipped),
	})

	respond.JSON(c, http.StatusCreated, gin.H{
		"entries": stored,
		"skipped": result.Skipped,
	})
}
