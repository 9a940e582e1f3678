package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/contracts"
	"github.com/ronaldorededigital/confin/internal/domain/auth"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	userEntity, err := h.AuthService.Login(ctx, auth.Login{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.Generate(userEntity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Token: token,
		User:  contracts.ToUserResponse(userEntity),
	})
}

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.RegisterRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	userEntity, err := h.AuthService.Register(ctx, auth.Register{
		Name:       body.Name,
		Email:      body.Email,
		Password:   body.Password,
		TenantName: body.TenantName,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.Generate(userEntity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Token: token,
		User:  contracts.ToUserResponse(userEntity),
	})
}

// Logout é declarativo: o token é stateless e expira sozinho, a rota existe
// para o cliente ter um ponto único de encerramento de sessão.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Sessão encerrada"})
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	var body contracts.GoogleLoginRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	userEntity, err := h.AuthService.GoogleLogin(ctx, body.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.Generate(userEntity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Token: token,
		User:  contracts.ToUserResponse(userEntity),
	})
}
