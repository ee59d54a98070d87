package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	errMethodNotAllowed = "Method not allowed"
	errMissingFields    = "Message and userId are required"
	errProcessing       = "An error occurred while processing your request"
	errInvalidFrame     = "Invalid message format"
)

// ChatRequest is the body of POST /api/ai-chat and of each WebSocket frame
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// ChatResponse is a successful answer
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SocketReply is one frame sent back over the WebSocket
type SocketReply struct {
	ID       string `json:"id"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (req ChatRequest) valid() bool {
	return req.Message != "" && req.UserID != ""
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: errMethodNotAllowed})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Panic in chat handler", "panic", fmt.Sprint(rec))
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: errProcessing, Message: fmt.Sprint(rec)})
		}
	}()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		err = errors.Wrap(err, "failed to decode chat request")
		s.logger.Error("Error in AI chat", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: errProcessing, Message: err.Error()})
		return
	}

	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errMissingFields})
		return
	}

	response := s.assistant.Respond(r.Context(), req.UserID, req.Message)
	writeJSON(w, http.StatusOK, ChatResponse{Response: response})
}

// handleChatSocket answers each text frame independently; there is no
// conversation state between frames.
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("WebSocket read failed", "error", err)
			}
			return
		}

		reply := s.answerFrame(r, frame)
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("WebSocket write failed", "id", reply.ID, "error", err)
			return
		}
	}
}

func (s *Server) answerFrame(r *http.Request, frame []byte) (reply SocketReply) {
	reply.ID = uuid.NewString()

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Panic in chat socket", "id", reply.ID, "panic", fmt.Sprint(rec))
			reply.Response, reply.Error = "", errProcessing
		}
	}()

	var req ChatRequest
	if err := json.Unmarshal(frame, &req); err != nil {
		reply.Error = errInvalidFrame
		return reply
	}
	if !req.valid() {
		reply.Error = errMissingFields
		return reply
	}

	reply.Response = s.assistant.Respond(r.Context(), req.UserID, req.Message)
	return reply
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
