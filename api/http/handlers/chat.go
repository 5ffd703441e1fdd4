package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akiyanavi/concierge/api/http/presenter"
	"github.com/akiyanavi/concierge/pkg/chat"
	"github.com/akiyanavi/concierge/pkg/prompt"
)

type ChatHandler struct {
	uc  chat.UseCase
	log *zap.Logger
}

func NewChatHandler(uc chat.UseCase, log *zap.Logger) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{uc: uc, log: log}
}

type chatMessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessageDTO `json:"messages"`
	Intent   string           `json:"intent,omitempty"`
}

type chatResponse struct {
	Message string `json:"message"`
}

// Turn отвечает на один ход диалога: каталог запрашивается заново, промпт
// собирается и история целиком уходит модели.
// @Summary チャット応答
// @Description メッセージ履歴と任意の相談目的タグを受け取り、物件カタログに基づいた回答を返します。
// @Tags        チャット
// @Accept      json
// @Produce     json
// @Param       input body chatRequest true "メッセージ履歴"
// @Success     200 {object} chatResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /chat [post]
func (h *ChatHandler) Turn(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	history := make([]chat.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, chat.Message{Role: m.Role, Content: m.Content})
	}
	if err := chat.ValidateHistory(history); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	reqID := uuid.NewString()
	answer, err := h.uc.Reply(c.Context(), history, prompt.ParseIntent(req.Intent))
	if err != nil {
		// Provider-specific detail stays server-side; the client gets one
		// fixed localized message regardless of which stage failed.
		h.log.Error("chat turn failed",
			zap.String("requestId", reqID),
			zap.Error(err),
		)
		return presenter.Error(c, http.StatusInternalServerError, presenter.GenericFailure)
	}
	return presenter.JSON(c, http.StatusOK, chatResponse{Message: answer})
}
