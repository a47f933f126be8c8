package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/sashabaranov/go-openai"
)

// Completion parameters sent with every upstream request.
const (
	DefaultAssistantModel   = openai.GPT4oMini
	assistantTemperature    = 0.7
	assistantMaxTokens      = 1500
	assistantPenalty        = 0.1
	defaultAssistantTimeout = 30 * time.Second
)

// Messages the widget shows instead of an upstream reply.
const (
	EmptyReplyMessage        = "Sorry, I could not process your request."
	authFallbackMessage      = "There seems to be an authentication issue. Please contact support if this continues."
	rateLimitFallbackMessage = "I'm receiving a lot of requests right now. Please wait a moment and try again."
	unavailableFallbackMsg   = "The AI service is temporarily unavailable. Please try again in a few minutes."
	genericFallbackMessage   = "I apologize, but I'm having trouble connecting right now. Please try again in a moment."
)

const assistantSystemPrompt = `You are a friendly and knowledgeable financial expert and personal finance assistant. You help users with:

- Invoice generation and management
- Expense categorization and tracking
- Budget planning and forecasting
- Profit/loss calculations
- Financial reporting and analytics
- Account management
- Transaction analysis
- Financial planning advice

Always be helpful, professional, and provide actionable financial advice. Keep responses concise but informative. When users ask for specific actions like "Generate invoice" or "Categorize expenses", acknowledge their request and provide guidance on how they can use the app's features.

Current context: You're integrated into a personal finance web application with features for transactions, accounts, budgets, invoices, and reports.`

// AssistantConfig configures the upstream chat-completion client.
type AssistantConfig struct {
	APIKey  string
	BaseURL string // empty uses the public OpenAI endpoint
	Model   string
	Timeout time.Duration
}

type assistantService struct {
	BaseService
	client  *openai.Client
	model   string
	timeout time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewAssistantService creates the chat-completion relay. Without an API key
// every call fails with apperrors.ErrAssistantUnconfigured.
func NewAssistantService(cfg AssistantConfig) portssvc.AssistantSvc {
	svc := &assistantService{
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		inFlight: make(map[string]struct{}),
	}
	if svc.model == "" {
		svc.model = DefaultAssistantModel
	}
	if svc.timeout <= 0 {
		svc.timeout = defaultAssistantTimeout
	}
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		clientCfg.HTTPClient = rawBodyRecorder{next: clientCfg.HTTPClient}
		svc.client = openai.NewClientWithConfig(clientCfg)
	}
	return svc
}

// rawBodyKey marks a request context that wants the upstream response body.
type rawBodyKey struct{}

// rawBodyRecorder copies successful response bodies into the *[]byte found
// under rawBodyKey so they can be relayed unchanged. Streams never carry the key.
type rawBodyRecorder struct {
	next openai.HTTPDoer
}

func (r rawBodyRecorder) Do(req *http.Request) (*http.Response, error) {
	resp, err := r.next.Do(req)
	if err != nil {
		return resp, err
	}
	dst, ok := req.Context().Value(rawBodyKey{}).(*[]byte)
	if !ok || resp.StatusCode >= http.StatusBadRequest {
		return resp, nil
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	*dst = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

func (s *assistantService) ChatCompletion(ctx context.Context, req dto.ChatCompletionRequest) (json.RawMessage, error) {
	_, raw, err := s.complete(ctx, req.Messages)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// complete performs one non-streamed completion and returns both the decoded
// response and the body exactly as upstream sent it.
func (s *assistantService) complete(ctx context.Context, messages []dto.ChatMessage) (openai.ChatCompletionResponse, []byte, error) {
	if s.client == nil {
		return openai.ChatCompletionResponse{}, nil, apperrors.ErrAssistantUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var raw []byte
	ctx = context.WithValue(ctx, rawBodyKey{}, &raw)

	s.LogDebug(ctx, "Sending chat completion", slog.Int("messages", len(messages)))
	resp, err := s.client.CreateChatCompletion(ctx, s.buildRequest(messages))
	if err != nil {
		return openai.ChatCompletionResponse{}, nil, s.classify(ctx, err)
	}
	return resp, raw, nil
}

func (s *assistantService) StreamChatCompletion(ctx context.Context, req dto.ChatCompletionRequest, onChunk portssvc.StreamChunkFunc) error {
	if s.client == nil {
		return apperrors.ErrAssistantUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stream, err := s.client.CreateChatCompletionStream(ctx, s.buildRequest(req.Messages))
	if err != nil {
		return s.classify(ctx, err)
	}
	defer stream.Close()

	chunks := 0
	for {
		chunk, err := stream.RecvRaw()
		if errors.Is(err, io.EOF) {
			s.LogDebug(ctx, "Chat completion stream finished", slog.Int("chunks", chunks))
			return nil
		}
		if err != nil {
			return s.classify(ctx, err)
		}
		chunks++
		if err := onChunk(chunk); err != nil {
			return fmt.Errorf("failed to relay stream chunk: %w", err)
		}
	}
}

func (s *assistantService) Reply(ctx context.Context, sessionID string, messages []dto.ChatMessage) (dto.ChatMessage, error) {
	if !s.acquire(sessionID) {
		s.LogWarn(ctx, "Assistant reply already in flight", slog.String("session_id", sessionID))
		return dto.ChatMessage{}, apperrors.ErrBusy
	}
	defer s.release(sessionID)

	resp, _, err := s.complete(ctx, messages)
	if err != nil {
		return assistantMessage(fallbackMessage(err)), err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return assistantMessage(EmptyReplyMessage), nil
	}
	return assistantMessage(resp.Choices[0].Message.Content), nil
}

func (s *assistantService) buildRequest(messages []dto.ChatMessage) openai.ChatCompletionRequest {
	chat := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chat = append(chat, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: assistantSystemPrompt,
	})
	for _, m := range messages {
		chat = append(chat, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return openai.ChatCompletionRequest{
		Model:            s.model,
		Messages:         chat,
		Temperature:      assistantTemperature,
		MaxTokens:        assistantMaxTokens,
		PresencePenalty:  assistantPenalty,
		FrequencyPenalty: assistantPenalty,
	}
}

// classify converts a client error into an *apperrors.AssistantError.
// Context errors are passed through unchanged.
func (s *assistantService) classify(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.LogWarn(ctx, "Chat completion aborted", slog.String("error", err.Error()))
		return err
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	classified := &apperrors.AssistantError{
		Class:      apperrors.ClassifyAssistantStatus(status),
		StatusCode: status,
		Err:        err,
	}
	s.LogError(ctx, err, "Chat completion failed",
		slog.Int("upstream_status", status),
		slog.String("class", string(classified.Class)))
	return classified
}

func (s *assistantService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *assistantService) release(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}

func assistantMessage(content string) dto.ChatMessage {
	return dto.ChatMessage{Role: openai.ChatMessageRoleAssistant, Content: content}
}

// fallbackMessage picks the widget text for a failed reply.
func fallbackMessage(err error) string {
	var assistantErr *apperrors.AssistantError
	if errors.As(err, &assistantErr) {
		switch assistantErr.Class {
		case apperrors.AssistantAuthFailed:
			return authFallbackMessage
		case apperrors.AssistantRateLimited:
			return rateLimitFallbackMessage
		case apperrors.AssistantUnavailable:
			return unavailableFallbackMsg
		}
	}
	return genericFallbackMessage
}
