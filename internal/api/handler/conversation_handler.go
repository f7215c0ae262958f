package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oportuna/career-assistant/internal/core/domain"
	"github.com/oportuna/career-assistant/internal/core/ports"
)

type ConversationHandler struct {
	dialogue ports.DialogueService
}

func NewConversationHandler(dialogue ports.DialogueService) *ConversationHandler {
	return &ConversationHandler{dialogue: dialogue}
}

// Conversa returns the persisted conversation for a user. An empty log
// triggers the assistant-first greeting before returning.
//
// @Summary      Load a user's conversation
// @Tags         conversation
// @Accept       json
// @Produce      json
// @Param        body  body      conversationRequest  true  "User identity"
// @Success      200   {object}  conversationResponse
// @Router       /conversa [post]
func (h *ConversationHandler) Conversa(c echo.Context) error {
	var req conversationRequest
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return c.JSON(http.StatusOK, conversationResponse{Messages: []conversationMessage{}})
	}

	messages, err := h.dialogue.History(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	out := make([]conversationMessage, 0, len(messages))
	for _, m := range messages {
		role := wireRoleBot
		if m.Role == domain.RoleUser {
			role = wireRoleUser
		}
		out = append(out, conversationMessage{Role: role, Content: m.Content})
	}
	return c.JSON(http.StatusOK, conversationResponse{Messages: out})
}

// Mensagem processes one user turn and returns the assistant reply plus the
// opportunity flag.
//
// @Summary      Send a message to the assistant
// @Tags         conversation
// @Accept       json
// @Produce      json
// @Param        body  body      turnRequest  true  "User turn"
// @Success      200   {object}  turnResponse
// @Router       /mensagem [post]
func (h *ConversationHandler) Mensagem(c echo.Context) error {
	var req turnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, turnResponse{Resposta: "Dados inválidos."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, turnResponse{Resposta: "Dados inválidos."})
	}

	result, err := h.dialogue.HandleTurn(c.Request().Context(), req.UserID, req.Mensagem)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			return c.JSON(http.StatusOK, turnResponse{Resposta: "Dados inválidos."})
		}
		return err
	}

	return c.JSON(http.StatusOK, turnResponse{
		Resposta:             result.Reply,
		MostrarOportunidades: result.ShowOpportunities,
	})
}
