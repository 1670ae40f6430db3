package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Usuário e senha são obrigatórios")
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			badRequest(c, "Usuário e senha são obrigatórios")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			badRequest(c, "Usuário já existe")
		default:
			respondError(c, err, messages{})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Credenciais inválidas"})
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Credenciais inválidas"})
			return
		}
		respondError(c, err, messages{})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
