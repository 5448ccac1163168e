package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/middleware"
	"tour-srv/internal/model"

	"github.com/gin-gonic/gin"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type fakeUseCase struct {
	chatErr  error
	clearErr error
	history  []model.Message
}

func (f *fakeUseCase) Chat(ctx context.Context, input dialogue.ChatInput) (dialogue.ChatOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return dialogue.ChatOutput{}, dialogue.ErrUserIDRequired
	}
	if f.chatErr != nil {
		return dialogue.ChatOutput{}, f.chatErr
	}
	return dialogue.ChatOutput{Reply: "Chào bạn!"}, nil
}

func (f *fakeUseCase) GetHistory(ctx context.Context, input dialogue.HistoryInput) (dialogue.HistoryOutput, error) {
	return dialogue.HistoryOutput{UserID: input.UserID, History: f.history}, nil
}

func (f *fakeUseCase) ClearHistory(ctx context.Context, input dialogue.HistoryInput) error {
	return f.clearErr
}

func newTestRouter(uc dialogue.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	New(noopLogger{}, uc).RegisterRoutes(&engine.RouterGroup, middleware.New(noopLogger{}))
	return engine
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	body := strings.NewReader(`{"user_id":"u1","message":"xin chào"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["reply"] != "Chào bạn!" {
		t.Fatalf("reply = %q", resp["reply"])
	}
}

func TestChatEndpointMissingUserID(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChatEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{broken`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	router := newTestRouter(&fakeUseCase{history: []model.Message{
		{Role: model.RoleUser, Content: "xin chào"},
		{Role: model.RoleAssistant, Content: "Chào bạn!"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp historyResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.UserID != "u1" || len(resp.History) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.History[0].Role != model.RoleUser {
		t.Fatalf("first role = %q", resp.History[0].Role)
	}
}

func TestClearHistoryEndpoint(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp statusResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("status = %q", resp.Status)
	}
}

func TestClearHistoryEndpointStoreFault(t *testing.T) {
	router := newTestRouter(&fakeUseCase{
		clearErr: dialogue.ErrResetFailed,
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Store faults come back as a 200 status payload, not a 5xx.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp statusResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "error" {
		t.Fatalf("status = %q, want error", resp.Status)
	}
}
