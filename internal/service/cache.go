package service

import (
	"context"

	"github.com/callsentry/callscreen/internal/engine"
)

// VerdictCache is an optional read-through cache of verdicts keyed by
// mode and raw number. A nil cache is valid and means every call hits
// the engine directly; the engine is cheap, the cache exists so API
// nodes can share block decisions.
type VerdictCache interface {
	// GetVerdict returns nil without error on a cache miss.
	GetVerdict(ctx context.Context, mode, phoneNumber string) (*engine.Verdict, error)

	SetVerdict(ctx context.Context, mode, phoneNumber string, v engine.Verdict) error
}
