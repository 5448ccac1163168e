package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tour-srv/internal/dialogue"
	memoryRepo "tour-srv/internal/dialogue/repository/memory"
	"tour-srv/internal/model"
	"tour-srv/internal/tour"
	"tour-srv/pkg/locale"
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

// fakeLLM serves scripted intent analyses (consumed in order) and a fixed
// chat reply. Prompts are told apart by the JSON format marker only the
// intent prompt carries.
type fakeLLM struct {
	intents   []string
	intentErr error
	chatReply string
	chatErr   error
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "Format JSON") {
		if f.intentErr != nil {
			return "", f.intentErr
		}
		if len(f.intents) == 0 {
			return `{"intent":"UNKNOWN"}`, nil
		}
		next := f.intents[0]
		f.intents = f.intents[1:]
		return next, nil
	}
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.chatReply, nil
}

type fakeTourUC struct {
	out       tour.SearchOutput
	lastInput tour.SearchInput
	called    bool
}

func (f *fakeTourUC) Search(ctx context.Context, input tour.SearchInput) tour.SearchOutput {
	f.called = true
	f.lastInput = input
	return f.out
}

func newTestUseCase(llm *fakeLLM, tourUC *fakeTourUC) dialogue.UseCase {
	return New(memoryRepo.New(), tourUC, llm, noopLogger{}, Config{})
}

func mustChat(t *testing.T, uc dialogue.UseCase, userID, message string) string {
	t.Helper()
	out, err := uc.Chat(context.Background(), dialogue.ChatInput{UserID: userID, Message: message})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	return out.Reply
}

func TestChatSeedsLanguageFromRequestLocale(t *testing.T) {
	llm := &fakeLLM{intents: []string{`{"intent":"SEARCH_TOUR"}`}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	ctx := locale.SetLocaleToContext(context.Background(), locale.EN)
	out, err := uc.Chat(ctx, dialogue.ChatInput{UserID: "u1", Message: "I want a tour"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	// No stored session and no extracted language, so the request locale
	// decides the reply language for the fresh session.
	if !strings.Contains(out.Reply, "destination") {
		t.Fatalf("expected English destination question, got %q", out.Reply)
	}
}

func TestChatStoredLanguageWinsOverRequestLocale(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","language":"vi"}`,
		`{"intent":"SEARCH_TOUR","destination_point":"Đà Nẵng"}`,
	}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	mustChat(t, uc, "u1", "tìm tour giúp mình")

	ctx := locale.SetLocaleToContext(context.Background(), locale.EN)
	out, err := uc.Chat(ctx, dialogue.ChatInput{UserID: "u1", Message: "đi Đà Nẵng"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !strings.Contains(out.Reply, "khởi hành từ đâu") {
		t.Fatalf("stored Vietnamese must win over the header, got %q", out.Reply)
	}
}

func TestChatValidation(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{}, &fakeTourUC{})

	_, err := uc.Chat(context.Background(), dialogue.ChatInput{Message: "hi"})
	if !errors.Is(err, dialogue.ErrUserIDRequired) {
		t.Fatalf("err = %v, want ErrUserIDRequired", err)
	}

	_, err = uc.Chat(context.Background(), dialogue.ChatInput{UserID: "u1", Message: "   "})
	if !errors.Is(err, dialogue.ErrMessageRequired) {
		t.Fatalf("err = %v, want ErrMessageRequired", err)
	}
}

func TestChatChecklistAsksDestinationFirst(t *testing.T) {
	llm := &fakeLLM{intents: []string{`{"intent":"SEARCH_TOUR"}`}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	reply := mustChat(t, uc, "u1", "tôi muốn đi du lịch")
	if !strings.Contains(reply, "điểm đến") {
		t.Fatalf("expected destination question, got %q", reply)
	}
}

func TestChatChecklistAsksDepartureNext(t *testing.T) {
	llm := &fakeLLM{intents: []string{`{"intent":"SEARCH_TOUR","destination_point":"Đà Nẵng"}`}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	reply := mustChat(t, uc, "u1", "tôi muốn đi Đà Nẵng")
	if !strings.Contains(reply, "khởi hành từ đâu") {
		t.Fatalf("expected departure question, got %q", reply)
	}
}

func TestChatSlotsPersistAcrossTurns(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","destination_point":"Đà Nẵng"}`,
		`{"intent":"SEARCH_TOUR","departure_point":"Hà Nội"}`,
	}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	mustChat(t, uc, "u1", "tôi muốn đi Đà Nẵng")
	reply := mustChat(t, uc, "u1", "từ Hà Nội")

	// Both slots known now, people is next in the checklist. The question
	// echoes both, proving the first turn's destination survived a turn
	// that did not mention it.
	if !strings.Contains(reply, "Đà Nẵng") || !strings.Contains(reply, "Hà Nội") {
		t.Fatalf("expected people question with both slots, got %q", reply)
	}
}

func TestChatSearchFlowCompletesAcrossTurns(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","destination_point":"Sapa","departure_point":"Hà Nội","people":2}`,
		`{"intent":"SEARCH_TOUR","days":3}`,
	}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	mustChat(t, uc, "u1", "đi Sapa từ Hà Nội, 2 người")
	reply := mustChat(t, uc, "u1", "3 ngày")

	// All four slots are known after the second turn, so the search runs.
	// The empty fake catalog yields the no-tour template for Sapa.
	if !strings.Contains(reply, "Sapa") {
		t.Fatalf("expected a search result reply, got %q", reply)
	}
}

func TestChatOffTopicMidSearchGoesToOpenChat(t *testing.T) {
	llm := &fakeLLM{
		intents: []string{
			`{"intent":"SEARCH_TOUR","destination_point":"Sapa"}`,
			`{"intent":"UNKNOWN"}`,
			`{"intent":"SEARCH_TOUR"}`,
		},
		chatReply: "Thời tiết Sapa tháng này se lạnh.",
	}
	uc := newTestUseCase(llm, &fakeTourUC{})

	mustChat(t, uc, "u1", "đi Sapa")

	// An off-topic turn takes priority over the search flow.
	reply := mustChat(t, uc, "u1", "thời tiết thế nào?")
	if reply != "Thời tiết Sapa tháng này se lạnh." {
		t.Fatalf("expected open chat reply, got %q", reply)
	}

	// The stage and the collected destination both survived the detour.
	reply = mustChat(t, uc, "u1", "tiếp tục tìm tour")
	if !strings.Contains(reply, "khởi hành từ đâu") {
		t.Fatalf("expected checklist to resume at departure, got %q", reply)
	}
}

func TestChatFullSlotsRunsSearch(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","destination_point":"Đà Nẵng","departure_point":"Hà Nội","people":4,"days":"khoảng 3 ngày"}`,
	}}
	tourUC := &fakeTourUC{out: tour.SearchOutput{
		Tours: []model.Tour{
			{Name: "Đà Nẵng 3N2Đ", Departure: "Hà Nội", Days: "3", Price: "2500000"},
		},
		TotalFound: 1,
	}}
	uc := newTestUseCase(llm, tourUC)

	reply := mustChat(t, uc, "u1", "đi Đà Nẵng từ Hà Nội 4 người khoảng 3 ngày")

	if !tourUC.called {
		t.Fatal("search was not invoked")
	}
	want := tour.SearchInput{Departure: "Hà Nội", Destination: "Đà Nẵng", People: 4, Days: 3}
	if tourUC.lastInput != want {
		t.Fatalf("search input = %+v, want %+v", tourUC.lastInput, want)
	}
	if !strings.Contains(reply, "1. Đà Nẵng 3N2Đ") {
		t.Fatalf("expected result card in reply, got %q", reply)
	}
	if !strings.Contains(reply, "Bạn muốn đặt tour nào") {
		t.Fatalf("expected call to action, got %q", reply)
	}
}

func TestChatZeroPeopleDoesNotFireSearch(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","destination_point":"Đà Nẵng","departure_point":"Hà Nội","people":0,"days":3}`,
	}}
	tourUC := &fakeTourUC{}
	uc := newTestUseCase(llm, tourUC)

	// A zero people count is not a usable party size: the slot stays empty
	// and the checklist re-asks instead of searching.
	reply := mustChat(t, uc, "u1", "đi Đà Nẵng từ Hà Nội, 0 người, 3 ngày")

	if tourUC.called {
		t.Fatal("search must not fire while the people slot is unfilled")
	}
	if !strings.Contains(reply, "bao nhiêu người") {
		t.Fatalf("expected people question, got %q", reply)
	}
}

func TestChatNoMatchingTour(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","destination_point":"Phú Quốc","departure_point":"Hà Nội","people":2,"days":7}`,
	}}
	tourUC := &fakeTourUC{out: tour.SearchOutput{Tours: []model.Tour{}}}
	uc := newTestUseCase(llm, tourUC)

	reply := mustChat(t, uc, "u1", "đi Phú Quốc 7 ngày")
	if !strings.Contains(reply, "không tìm thấy tour") {
		t.Fatalf("expected no-tour message, got %q", reply)
	}
	if !strings.Contains(reply, "Phú Quốc") {
		t.Fatalf("no-tour message must echo the destination, got %q", reply)
	}
}

func TestChatBooking(t *testing.T) {
	llm := &fakeLLM{intents: []string{`{"intent":"BOOK_TOUR"}`}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	reply := mustChat(t, uc, "u1", "đặt tour này cho tôi")
	if !strings.Contains(reply, "ghi nhận yêu cầu đặt tour") {
		t.Fatalf("expected booking acknowledgement, got %q", reply)
	}
}

func TestChatGreetingGoesToOpenChat(t *testing.T) {
	llm := &fakeLLM{
		intents:   []string{`{"intent":"GREETING","language":"en"}`},
		chatReply: "  Hello! How can I help you today?  ",
	}
	uc := newTestUseCase(llm, &fakeTourUC{})

	reply := mustChat(t, uc, "u1", "hello")
	if reply != "Hello! How can I help you today?" {
		t.Fatalf("got %q", reply)
	}
}

func TestChatEverythingDownStillReplies(t *testing.T) {
	llm := &fakeLLM{
		intentErr: errors.New("connection refused"),
		chatErr:   errors.New("connection refused"),
	}
	uc := newTestUseCase(llm, &fakeTourUC{})

	reply := mustChat(t, uc, "u1", "xin chào")
	if reply != dialogue.ServiceUnavailableReply {
		t.Fatalf("got %q, want the fixed fallback", reply)
	}
}

func TestChatAppendsHistoryInOrder(t *testing.T) {
	llm := &fakeLLM{intents: []string{`{"intent":"GREETING"}`}, chatReply: "Chào bạn!"}
	uc := newTestUseCase(llm, &fakeTourUC{})

	mustChat(t, uc, "u1", "xin chào")

	out, err := uc.GetHistory(context.Background(), dialogue.HistoryInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(out.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(out.History))
	}
	if out.History[0].Role != model.RoleUser || out.History[0].Content != "xin chào" {
		t.Fatalf("first entry = %+v", out.History[0])
	}
	if out.History[1].Role != model.RoleAssistant || out.History[1].Content != "Chào bạn!" {
		t.Fatalf("second entry = %+v", out.History[1])
	}
}

func TestGetHistoryUnknownUser(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{}, &fakeTourUC{})

	out, err := uc.GetHistory(context.Background(), dialogue.HistoryInput{UserID: "nobody"})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(out.History) != 0 {
		t.Fatalf("expected empty history, got %+v", out.History)
	}
}

func TestClearHistoryResetsSlots(t *testing.T) {
	llm := &fakeLLM{intents: []string{
		`{"intent":"SEARCH_TOUR","destination_point":"Đà Nẵng"}`,
		`{"intent":"SEARCH_TOUR"}`,
	}}
	uc := newTestUseCase(llm, &fakeTourUC{})

	mustChat(t, uc, "u1", "đi Đà Nẵng")

	if err := uc.ClearHistory(context.Background(), dialogue.HistoryInput{UserID: "u1"}); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}

	// The destination was dropped with the session, so the checklist starts
	// over from the destination question.
	reply := mustChat(t, uc, "u1", "tìm tour đi")
	if !strings.Contains(reply, "điểm đến") {
		t.Fatalf("expected checklist restart, got %q", reply)
	}
}

func TestClearHistoryValidation(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{}, &fakeTourUC{})
	if err := uc.ClearHistory(context.Background(), dialogue.HistoryInput{}); !errors.Is(err, dialogue.ErrUserIDRequired) {
		t.Fatalf("err = %v, want ErrUserIDRequired", err)
	}
}
