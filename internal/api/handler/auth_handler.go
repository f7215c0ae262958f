package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oportuna/career-assistant/internal/core/domain"
	"github.com/oportuna/career-assistant/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type loginResponse struct {
	Sucesso  bool   `json:"sucesso"`
	UserID   string `json:"user_id,omitempty"`
	Token    string `json:"token,omitempty"`
	Mensagem string `json:"mensagem,omitempty"`
}

// Login authenticates a user against the credential file.
//
// Rejections are part of the contract, not transport errors: both unknown
// emails and wrong passwords return 200 with sucesso=false.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, loginResponse{Sucesso: false, Mensagem: "Dados inválidos."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, loginResponse{Sucesso: false, Mensagem: "Dados inválidos."})
	}

	userID, token, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusOK, loginResponse{Sucesso: false, Mensagem: "Email ou senha incorretos."})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Sucesso: true, UserID: userID, Token: token})
}
