package evaluations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"advisor-backend/advisor/model"
	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
	"advisor-backend/internal/usage"
)

// Handler wires HTTP handlers to the evaluations service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.createEvaluation)
	rg.POST("/evaluations/batch", h.createBatch)
	rg.GET("/evaluations", h.listEvaluations)
	rg.GET("/evaluations/:id", h.getEvaluation)
}

type batchRequest struct {
	Requester model.RequesterProfile `json:"requester"`
	Findings  []model.Finding        `json:"findings"`
}

func (h *Handler) createBatch(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	results, err := h.Svc.CreateBatch(c.Request.Context(), userID, req.Requester, req.Findings)
	if err != nil {
		var verr model.ValidationError
		switch {
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your evaluation limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		case errors.Is(err, ErrNoCandidates):
			respond.Error(c, http.StatusUnprocessableEntity, "no_candidates", "no candidate options found for one of the finding categories", nil)
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), []map[string]string{
				{"field": verr.Field, "issue": verr.Reason},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run evaluations", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"items": results})
}

func (h *Handler) createEvaluation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ev, err := h.Svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		var verr model.ValidationError
		switch {
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your evaluation limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		case errors.Is(err, ErrNoCandidates):
			respond.Error(c, http.StatusUnprocessableEntity, "no_candidates", "no candidate options found for the finding's category", nil)
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), []map[string]string{
				{"field": verr.Field, "issue": verr.Reason},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run evaluation", nil)
		}
		return
	}

	c.Set("evaluationId", ev.ID)
	c.Set("findingCategory", ev.Request.Finding.Category)
	respond.JSON(c, http.StatusCreated, ev)
}

func (h *Handler) getEvaluation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "evaluation id is required", nil)
		return
	}

	ev, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "evaluation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch evaluation", nil)
		}
		return
	}

	c.Set("evaluationId", ev.ID)
	respond.JSON(c, http.StatusOK, ev)
}

func (h *Handler) listEvaluations(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list evaluations", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"items": items})
}
