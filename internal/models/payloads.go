package models

// These structs define the JSON payloads of the public HTTP API.

// AnalyzeResponse is returned by POST /api/analyze.
type AnalyzeResponse struct {
	Analysis     string `json:"analysis"`
	DocumentText string `json:"documentText"`
	DocumentID   string `json:"documentId"`
	Status       string `json:"status"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	History  []ChatTurn `json:"history"`
	Language string     `json:"language"`
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	GeminiConfigured bool   `json:"gemini_configured"`
	GCPConfigured    bool   `json:"gcp_configured"`
}

// MessageResponse is the readiness reply for GET on the POST endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a failure. Traceback is set for server-side errors only.
type ErrorResponse struct {
	Error     string `json:"error"`
	Traceback string `json:"traceback,omitempty"`
}
