package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/server/http/dto"
)

// MattoHandler manages public submission endpoints.
type MattoHandler struct {
	facade LedgerFacade
}

// NewMattoHandler constructs MattoHandler.
func NewMattoHandler(facade LedgerFacade) *MattoHandler {
	return &MattoHandler{facade: facade}
}

// Create handles POST /api/matti.
func (h *MattoHandler) Create(c *gin.Context) {
	var req dto.MattoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	matto, err := h.facade.Submit(c.Request.Context(), model.Submission{
		UserID:      req.UserID,
		Username:    req.Username,
		PhotoData:   req.PhotoData,
		Nickname:    req.Nickname,
		Description: req.Description,
		Rarity:      req.Rarity,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Utente non trovato o disattivato!")
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMattoResponse(*matto))
}

// List handles GET /api/matti.
func (h *MattoHandler) List(c *gin.Context) {
	matti, err := h.facade.ApprovedMatti(c.Request.Context())
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.ToMattoResponses(matti))
}

// ListByUser handles GET /api/matti/user/:id.
func (h *MattoHandler) ListByUser(c *gin.Context) {
	matti, err := h.facade.UserMatti(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.ToMattoResponses(matti))
}
