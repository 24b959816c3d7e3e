package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

const defaultThreadID = "default"

// Assistant is the slice of the dispatch loop the HTTP layer needs.
type Assistant interface {
	Execute(ctx context.Context, threadID, userInput string) (string, error)
}

// Server exposes the medical assistant over HTTP.
type Server struct {
	assistant Assistant
	logger    *slog.Logger
}

// New creates a server. A nil assistant is allowed and reported as 503 on
// every endpoint that needs it, matching the not-initialized contract.
func New(assistant Assistant, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		assistant: assistant,
		logger:    logger,
	}
}

// Handler returns the route table as an http.Handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /info", s.handleInfo)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("/", s.handleNotFound)
	return mux
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		writeError(w, http.StatusServiceUnavailable,
			"Service unavailable", "Medical Assistant is not available. Please try again later.")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON.")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Invalid request", "Message cannot be empty")
		return
	}

	threadID := req.ThreadID
	if threadID == "" {
		threadID = defaultThreadID
	}

	response, err := s.assistant.Execute(r.Context(), threadID, message)
	if err != nil {
		// Internal detail stays in the log; the caller gets a generic apology.
		s.logger.Error("chat exchange failed", "thread_id", threadID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error",
			"I apologize, but I encountered an error processing your request. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Response: response,
		ThreadID: threadID,
		Status:   "success",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		writeError(w, http.StatusServiceUnavailable, "Service unavailable", "Agent not initialized")
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Medical Assistant is running and ready to help!",
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, hospitalInfo)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiDescription)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found",
		"The requested endpoint does not exist.")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, errText, message string) {
	writeJSON(w, status, ErrorResponse{Error: errText, Message: message})
}
