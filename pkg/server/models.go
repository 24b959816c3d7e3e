package server

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"thread_id,omitempty"`
}

// ChatResponse is the reply of POST /chat
type ChatResponse struct {
	Response string `json:"response"`
	ThreadID string `json:"thread_id"`
	Status   string `json:"status"`
}

// HealthResponse is the reply of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// hospitalInfo is the static payload of GET /info
var hospitalInfo = map[string]any{
	"hospital_name": "Community Health Center Harichandanpur",
	"location":      "Keonjhar, Odisha, India",
	"owner":         "Dr. Harshin",
	"services": []string{
		"Hospital policies and procedures information",
		"Visiting hours and visitor guidelines",
		"General medical information",
		"Hospital management inquiries",
		"Appointment and token number lookups",
	},
	"features": []string{
		"24/7 AI assistance",
		"Multi-conversation support",
		"Policy document search",
		"Real-time information",
	},
}

// apiDescription is the static payload of GET /
var apiDescription = map[string]any{
	"message":     "Medical Assistant API for Community Health Center Harichandanpur",
	"status":      "active",
	"description": "AI-powered assistant for hospital policies, procedures, and medical information",
	"endpoints": map[string]string{
		"chat":   "/chat",
		"health": "/health",
		"info":   "/info",
	},
}
