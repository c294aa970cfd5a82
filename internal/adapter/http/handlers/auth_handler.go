package handlers

import (
	"errors"
	"log"
	"net/http"

	request "taller_mecanico/internal/adapter/http/dto/request"
	response "taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login checks a username and password. No session is issued.
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.LoginRequest	true	"Credentials"
//	@Success	200		{object}	response.UserResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	401		{object}	pkg.HTTPError
//	@Router		/v1/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] login failed username=%q err=%v", payload.Username, err)
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return validationError("INVALID_REQUEST", err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
