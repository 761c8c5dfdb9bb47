package repository

import (
	"context"

	"github.com/lmoretti/respite/internal/domain"
)

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, days int) ([]*domain.JournalEntry, error)
	ListRecentByKind(ctx context.Context, kind domain.JournalKind, days int) ([]*domain.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}
