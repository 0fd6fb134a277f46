package handlers

import (
	"net/http"

	"moving_ops/internal/draft"
	"moving_ops/internal/middleware"
	"moving_ops/internal/services"

	"github.com/gin-gonic/gin"
)

// DraftHandler serves the order form. Drafts belong to the caller's session.
type DraftHandler struct {
	draftService services.DraftService
}

func NewDraftHandler(draftService services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

type openDraftRequest struct {
	OrderID string `json:"orderId"`
}

// Open starts a new draft, or an edit of orderId when given.
func (h *DraftHandler) Open(c *gin.Context) {
	var req openDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	view, err := h.draftService.Open(c.Request.Context(), middleware.SessionID(c), req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *DraftHandler) Get(c *gin.Context) {
	view, err := h.draftService.Get(c.Request.Context(), middleware.SessionID(c), c.Param("draftId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DraftHandler) Apply(c *gin.Context) {
	var action draft.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.draftService.Apply(c.Request.Context(), middleware.SessionID(c), c.Param("draftId"), action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DraftHandler) Discard(c *gin.Context) {
	if err := h.draftService.Discard(c.Request.Context(), middleware.SessionID(c), c.Param("draftId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) Submit(c *gin.Context) {
	order, err := h.draftService.Submit(c.Request.Context(), middleware.SessionID(c), c.Param("draftId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
