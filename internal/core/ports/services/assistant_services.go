package services

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/finance_dashboard/internal/dto"
)

// StreamChunkFunc receives the data payload of each upstream event, unchanged.
type StreamChunkFunc func(chunk []byte) error

// AssistantSvc relays chat conversations to the completion API.
type AssistantSvc interface {
	// ChatCompletion performs a single non-streamed completion and returns the upstream body unchanged.
	ChatCompletion(ctx context.Context, req dto.ChatCompletionRequest) (json.RawMessage, error)

	// StreamChatCompletion relays every upstream chunk to onChunk until the stream ends.
	StreamChatCompletion(ctx context.Context, req dto.ChatCompletionRequest, onChunk StreamChunkFunc) error

	// Reply turns the conversation into the next assistant message. The returned
	// message is always usable; a non-nil error alongside it explains a fallback.
	// apperrors.ErrBusy is returned without a message while sessionID has a reply in flight.
	Reply(ctx context.Context, sessionID string, messages []dto.ChatMessage) (dto.ChatMessage, error)
}
