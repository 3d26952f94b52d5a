package service

import (
	"context"

	"github.com/callsentry/callscreen/internal/domain"
)

type Service interface {
	ScreenCall(ctx context.Context, rawPhone, mode string) (*domain.Screening, error)

	History(ctx context.Context, phoneNumber string) ([]*domain.Screening, error)

	Stats(ctx context.Context, phoneNumber string) (*domain.NumberStats, error)

	DeleteHistory(ctx context.Context, phoneNumber string) error
}
