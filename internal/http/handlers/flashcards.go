package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/startpage-backend/internal/http/response"
	"github.com/yungbote/startpage-backend/internal/services"
)

type FlashCardHandler struct {
	cards services.FlashCardService
}

func NewFlashCardHandler(cards services.FlashCardService) *FlashCardHandler {
	return &FlashCardHandler{cards: cards}
}

func errOr(err error, msg string) error {
	if err != nil {
		return err
	}
	return errors.New(msg)
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return uuid.Nil, false
	}
	return id, true
}

// POST /api/flashcards/sessions
// body: { "mode"?: "heuristic" | "ai", "count"?: 5 }
func (h *FlashCardHandler) StartSession(c *gin.Context) {
	var req struct {
		Mode  string `json:"mode"`
		Count int    `json:"count"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	view, err := h.cards.StartSession(c.Request.Context(), req.Mode, req.Count)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

// GET /api/flashcards/sessions/:id
func (h *FlashCardHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.cards.GetSession(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"session": view})
}

func (h *FlashCardHandler) move(c *gin.Context, fn func(*gin.Context, uuid.UUID) (*services.SessionView, error)) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := fn(c, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"session": view})
}

// POST /api/flashcards/sessions/:id/next
func (h *FlashCardHandler) Next(c *gin.Context) {
	h.move(c, func(c *gin.Context, id uuid.UUID) (*services.SessionView, error) {
		return h.cards.Next(c.Request.Context(), id)
	})
}

// POST /api/flashcards/sessions/:id/previous
func (h *FlashCardHandler) Previous(c *gin.Context) {
	h.move(c, func(c *gin.Context, id uuid.UUID) (*services.SessionView, error) {
		return h.cards.Previous(c.Request.Context(), id)
	})
}

// POST /api/flashcards/sessions/:id/flip
func (h *FlashCardHandler) Flip(c *gin.Context) {
	h.move(c, func(c *gin.Context, id uuid.UUID) (*services.SessionView, error) {
		return h.cards.Flip(c.Request.Context(), id)
	})
}

// POST /api/flashcards/sessions/:id/answer
// body: { "answer": "..." }
func (h *FlashCardHandler) Answer(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req struct {
		Answer *string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Answer == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errOr(err, "answer is required"))
		return
	}
	res, err := h.cards.Answer(c.Request.Context(), id, *req.Answer)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/flashcards/sessions/:id/attempts
func (h *FlashCardHandler) ListAttempts(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	list, err := h.cards.ListAttempts(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// DELETE /api/flashcards/sessions/:id
func (h *FlashCardHandler) CloseSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.cards.CloseSession(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
