package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

// QueryResult is what the pipeline hands back for one question. ErrorDetail
// carries a recovered model failure for logging; it is never a hard error.
type QueryResult struct {
	Answer      string        `json:"answer"`
	Sources     []string      `json:"sources"`
	Elapsed     time.Duration `json:"-"`
	SessionId   string        `json:"session_id"`
	ErrorDetail string        `json:"-"`
}

type ChatResponse struct {
	Answer       string    `json:"answer"`
	Sources      []string  `json:"sources"`
	ResponseTime float64   `json:"response_time"`
	SessionId    string    `json:"session_id"`
	Timestamp    time.Time `json:"timestamp"`
}

type TurnDTO struct {
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Timestamp         time.Time `json:"timestamp"`
}

type HistoryResponse struct {
	SessionId string    `json:"session_id"`
	History   []TurnDTO `json:"history"`
}

type ClearHistoryResponse struct {
	SessionId string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}
