package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/akiyanavi/concierge/api/http/presenter"
)

// Starter questions shown as chips in the chat UI before the first turn.
var starterQuestions = []string{
	"1000万円以下の物件は?",
	"投資向きの物件を教えて",
	"民泊できる物件はある?",
	"おすすめの物件は?",
}

type SuggestHandler struct{}

func NewSuggestHandler() *SuggestHandler { return &SuggestHandler{} }

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// List returns the fixed starter questions.
// @Summary 質問サジェスト
// @Tags    チャット
// @Produce json
// @Success 200 {object} suggestionsResponse
// @Router  /suggestions [get]
func (h *SuggestHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, suggestionsResponse{Suggestions: starterQuestions})
}
