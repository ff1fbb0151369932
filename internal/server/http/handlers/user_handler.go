package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/server/http/dto"
	"github.com/fantamatto/fantamatto/internal/server/http/middleware"
)

// UserHandler processes registration, login and public user lookups.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			abortWithDetail(c, http.StatusBadRequest, "Credenziali non valide!")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithDetail(c, http.StatusConflict, "Username già esistente!")
		default:
			abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.SessionResponse{User: dto.ToUserResponse(*user), Token: token})
}

// Login handles POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, "Richiesta non valida!")
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInactiveAccount):
			abortWithDetail(c, http.StatusUnauthorized, "Account disattivato!")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			abortWithDetail(c, http.StatusUnauthorized, "Password errata!")
		default:
			abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{User: dto.ToUserResponse(*user), Token: token})
}

// Me handles GET /api/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.facade.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusUnauthorized, "Utente non trovato!")
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.facade.UserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Utente non trovato!")
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, "Errore interno!")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// Leaderboard handles GET /api/leaderboard.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	users, err := h.facade.Leaderboard(c.Request.Context())
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
