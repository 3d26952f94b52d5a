package service

import (
	"context"

	"github.com/callsentry/callscreen/internal/domain"
)

type Repository interface {
	SaveScreening(ctx context.Context, s *domain.Screening) error

	GetScreenings(ctx context.Context, phoneNumber string) ([]*domain.Screening, error)

	GetStats(ctx context.Context, phoneNumber string) (*domain.NumberStats, error)

	UpsertStats(ctx context.Context, stats *domain.NumberStats, ttlSeconds int) error

	DeleteScreenings(ctx context.Context, phoneNumber string) error
}
