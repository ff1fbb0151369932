package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/server/http/dto"
)

// AdminHandler manages the moderation surface. All routes except Login sit
// behind the AdminRequired middleware.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	if err := h.facade.VerifyAdminPassword(req.Password); err != nil {
		abortWithDetail(c, http.StatusUnauthorized, "Password admin errata!")
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{Message: "Login admin riuscito", IsAdmin: true})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(*stats))
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithDetail(c, http.StatusConflict, "Username già esistente!")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			abortWithDetail(c, http.StatusBadRequest, "Credenziali non valide!")
		default:
			abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(*user))
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, dto.ToUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateUser handles PUT /api/admin/users/:id.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), c.Param("id"), model.UserChanges{
		Username:    req.Username,
		Password:    req.Password,
		TotalPoints: req.TotalPoints,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			abortWithDetail(c, http.StatusNotFound, "Utente non trovato!")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithDetail(c, http.StatusConflict, "Username già esistente!")
		default:
			abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.facade.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Utente non trovato!")
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Utente eliminato con successo!"})
}

// ListMatti handles GET /api/admin/matti.
func (h *AdminHandler) ListMatti(c *gin.Context) {
	matti, err := h.facade.AllMatti(c.Request.Context())
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.ToMattoResponses(matti))
}

// UpdateMatto handles PUT /api/admin/matti/:id.
func (h *AdminHandler) UpdateMatto(c *gin.Context) {
	var req dto.MattoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	matto, err := h.facade.UpdateMatto(c.Request.Context(), c.Param("id"), model.MattoChanges{
		Nickname:    req.Nickname,
		Description: req.Description,
		Rarity:      req.Rarity,
		IsApproved:  req.IsApproved,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Matto non trovato!")
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}

	c.JSON(http.StatusOK, dto.ToMattoResponse(*matto))
}

// DeleteMatto handles DELETE /api/admin/matti/:id.
func (h *AdminHandler) DeleteMatto(c *gin.Context) {
	if err := h.facade.DeleteMatto(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Matto non trovato!")
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Matto eliminato con successo!"})
}

// ResetPoints handles POST /api/admin/reset-points.
func (h *AdminHandler) ResetPoints(c *gin.Context) {
	if err := h.facade.ResetPoints(c.Request.Context()); err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tutti i punti sono stati resettati!"})
}
