package dialogue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	GetHistory(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	ClearHistory(ctx context.Context, input HistoryInput) error
}
