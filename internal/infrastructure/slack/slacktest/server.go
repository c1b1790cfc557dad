// Package slacktest provides an in-process fake of the Slack Web API methods
// used by slack-unsend.
package slacktest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// SlackResponse represents the Slack API response envelope.
type SlackResponse struct {
	OK      bool   `json:"ok"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
	Error   string `json:"error,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	TeamID  string `json:"team_id,omitempty"`
	Team    string `json:"team,omitempty"`
	BotID   string `json:"bot_id,omitempty"`
}

// DeleteRequest is a chat.delete call received by the fake.
type DeleteRequest struct {
	Channel    string
	TS         string
	ReceivedAt time.Time
}

// Server is a fake Slack Web API.
type Server struct {
	*httptest.Server

	mu           sync.RWMutex
	token        string
	deletions    []DeleteRequest
	deleteErrors map[string]string // ts -> error code
	statusCode   int
	deleteDelay  time.Duration
}

// NewServer starts a fake Slack API that accepts the given bot token.
func NewServer(token string) *Server {
	s := &Server{
		token:        token,
		deleteErrors: make(map[string]string),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// APIURL returns the base URL to hand to slack.OptionAPIURL.
func (s *Server) APIURL() string {
	return s.URL + "/api/"
}

// FailDelete makes chat.delete for ts answer ok=false with the given code.
func (s *Server) FailDelete(ts, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteErrors[ts] = code
}

// SetStatusCode forces every API response to use the given HTTP status.
// Zero restores normal behavior.
func (s *Server) SetStatusCode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCode = code
}

// SetDeleteDelay makes chat.delete wait d before answering.
func (s *Server) SetDeleteDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteDelay = d
}

// Deletions returns the chat.delete calls that reached the method logic.
func (s *Server) Deletions() []DeleteRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DeleteRequest, len(s.deletions))
	copy(out, s.deletions)
	return out
}

// Reset clears recorded calls and injected failures.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletions = nil
	s.deleteErrors = make(map[string]string)
	s.statusCode = 0
	s.deleteDelay = 0
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	statusCode := s.statusCode
	s.mu.RUnlock()

	if statusCode != 0 {
		if statusCode == http.StatusTooManyRequests {
			w.Header().Set("Retry-After", "1")
		}
		w.WriteHeader(statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/api/chat.delete":
		s.handleDelete(w, r)
	case "/api/auth.test":
		s.handleAuthTest(w, r)
	default:
		s.writeJSON(w, SlackResponse{OK: false, Error: "unknown_method"})
	}
}

// handleDelete validates and records a chat.delete call.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, SlackResponse{OK: false, Error: "invalid_post_type"})
		return
	}
	if err := r.ParseForm(); err != nil {
		s.writeJSON(w, SlackResponse{OK: false, Error: "invalid_form_data"})
		return
	}
	if code := s.authError(r); code != "" {
		s.writeJSON(w, SlackResponse{OK: false, Error: code})
		return
	}

	channel := r.PostForm.Get("channel")
	ts := r.PostForm.Get("ts")
	if channel == "" || ts == "" {
		s.writeJSON(w, SlackResponse{OK: false, Error: "invalid_arguments"})
		return
	}

	s.mu.Lock()
	s.deletions = append(s.deletions, DeleteRequest{Channel: channel, TS: ts, ReceivedAt: time.Now()})
	code, failed := s.deleteErrors[ts]
	delay := s.deleteDelay
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if failed {
		s.writeJSON(w, SlackResponse{OK: false, Error: code})
		return
	}

	s.writeJSON(w, SlackResponse{OK: true, Channel: channel, TS: ts})
}

func (s *Server) handleAuthTest(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	if code := s.authError(r); code != "" {
		s.writeJSON(w, SlackResponse{OK: false, Error: code})
		return
	}

	s.writeJSON(w, SlackResponse{
		OK:     true,
		UserID: "U0BOT",
		TeamID: "T0TEAM",
		Team:   "test-team",
		BotID:  "B0BOT",
	})
}

// authError returns "" when the request carries the expected token,
// either as a bearer header or as a form field.
func (s *Server) authError(r *http.Request) string {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		token = r.Form.Get("token")
	}

	switch {
	case token == "":
		return "not_authed"
	case token != s.token:
		return "invalid_auth"
	default:
		return ""
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, resp SlackResponse) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
