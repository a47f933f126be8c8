package dto

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatCompletionRequest is the body accepted by the chat-completion proxy.
type ChatCompletionRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	Stream   bool          `json:"stream"`
}

// AssistantReplyRequest is the widget conversation so far.
type AssistantReplyRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

// AssistantReplyResponse carries the message to append to the conversation.
type AssistantReplyResponse struct {
	Message ChatMessage `json:"message"`
}
