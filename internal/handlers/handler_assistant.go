package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

const sseDone = "[DONE]"

type assistantHandler struct {
	assistantService portssvc.AssistantSvc
}

// registerAssistantRoutes registers the chat-completion proxy and the widget reply route.
// Extra handlers (rate limiting) run before both.
func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvc, extra ...gin.HandlerFunc) {
	h := &assistantHandler{assistantService: assistantService}

	assistant := rg.Group("/assistant", extra...)
	{
		assistant.POST("/chat-completion", h.chatCompletion)
		assistant.POST("/messages", h.reply)
	}
}

// chatCompletion godoc
// @Summary Chat-completion proxy
// @Description Relays the conversation upstream. With stream=true the response is text/event-stream of "data: <chunk>" lines ending with "data: [DONE]".
// @Tags assistant
// @Accept  json
// @Produce  json
// @Param   request body dto.ChatCompletionRequest true "Conversation"
// @Success 200 {object} map[string]interface{} "Upstream completion"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 502 {object} map[string]string "Upstream error"
// @Failure 503 {object} map[string]string "Assistant unavailable"
// @Router /assistant/chat-completion [post]
func (h *assistantHandler) chatCompletion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "ChatCompletion")
		return
	}

	if req.Stream {
		h.streamChatCompletion(c, req)
		return
	}

	resp, err := h.assistantService.ChatCompletion(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Chat completion failed", slog.String("error", err.Error()))
		c.JSON(assistantStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", resp)
}

// streamChatCompletion writes upstream chunks as server-sent events. Failures
// before the first chunk still get a JSON error response; later failures end
// the stream with an error event.
func (h *assistantHandler) streamChatCompletion(c *gin.Context, req dto.ChatCompletionRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	started := false

	err := h.assistantService.StreamChatCompletion(c.Request.Context(), req, func(chunk []byte) error {
		if !started {
			c.Header("Content-Type", "text/event-stream")
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Status(http.StatusOK)
			started = true
		}
		return writeEvent(c, string(chunk))
	})

	switch {
	case err == nil && !started:
		// Upstream closed without sending anything.
		c.Header("Content-Type", "text/event-stream")
		c.Status(http.StatusOK)
		_ = writeEvent(c, sseDone)
	case err == nil:
		_ = writeEvent(c, sseDone)
	case !started:
		logger.Warn("Chat completion stream failed", slog.String("error", err.Error()))
		c.JSON(assistantStatus(err), gin.H{"error": err.Error()})
	default:
		logger.Warn("Chat completion stream interrupted", slog.String("error", err.Error()))
		payload, _ := json.Marshal(gin.H{"error": err.Error()})
		_ = writeEvent(c, string(payload))
	}
}

func writeEvent(c *gin.Context, data string) error {
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// reply godoc
// @Summary Assistant widget reply
// @Description Returns the next assistant message. Upstream failures are answered with a fallback message.
// @Tags assistant
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string false "Widget session identifier"
// @Param   request body dto.AssistantReplyRequest true "Conversation so far"
// @Success 200 {object} dto.AssistantReplyResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "A reply is already in progress for this session"
// @Router /assistant/messages [post]
func (h *assistantHandler) reply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssistantReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "AssistantReply")
		return
	}

	sessionID := middleware.GetActorID(c)
	msg, err := h.assistantService.Reply(c.Request.Context(), sessionID, req.Messages)
	if errors.Is(err, apperrors.ErrBusy) {
		respondServiceError(c, logger, err, "reply")
		return
	}
	if err != nil {
		logger.Warn("Assistant replied with fallback message", slog.String("session_id", sessionID), slog.String("error", err.Error()))
	}
	c.JSON(http.StatusOK, dto.AssistantReplyResponse{Message: msg})
}
