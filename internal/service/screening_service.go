package service

import (
	"context"
	"fmt"
	"log"

	"github.com/nyaruka/phonenumbers"

	"github.com/callsentry/callscreen/internal/domain"
	"github.com/callsentry/callscreen/internal/engine"
	"github.com/callsentry/callscreen/internal/platform/metrics"
)

// statsTTLSeconds keeps per-number aggregates for ~18 months, matching
// the retention of the raw screening rows.
const statsTTLSeconds = 47304000

// screeningService is the concrete implementation of the Service
// interface. It is unexported (starts with lowercase) to force usage of
// the Interface.
type screeningService struct {
	engine *engine.Engine
	repo   Repository
	cache  VerdictCache
}

// NewScreeningService is the constructor.
// cache may be nil; classification then always runs in-process.
func NewScreeningService(eng *engine.Engine, repo Repository, cache VerdictCache) Service {
	return &screeningService{
		engine: eng,
		repo:   repo,
		cache:  cache,
	}
}

// ScreenCall classifies one incoming number and records the outcome.
// The verdict itself never depends on storage: the engine decides
// first, persistence failures are reported afterwards.
func (s *screeningService) ScreenCall(ctx context.Context, rawPhone, mode string) (*domain.Screening, error) {
	m, err := engine.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	verdict := s.lookupVerdict(ctx, rawPhone, m)

	metrics.Screened.WithLabelValues(m.String()).Inc()
	if verdict.Blocked {
		metrics.Blocked.WithLabelValues(m.String(), string(verdict.Reason)).Inc()
	}

	screening := domain.NewScreening(rawPhone, m, verdict)
	enrich(screening)

	if err := s.repo.SaveScreening(ctx, screening); err != nil {
		return screening, fmt.Errorf("save screening: %w", err)
	}
	if err := s.updateStats(ctx, screening); err != nil {
		return screening, fmt.Errorf("update stats: %w", err)
	}

	return screening, nil
}

func (s *screeningService) History(ctx context.Context, phoneNumber string) ([]*domain.Screening, error) {
	return s.repo.GetScreenings(ctx, phoneNumber)
}

func (s *screeningService) Stats(ctx context.Context, phoneNumber string) (*domain.NumberStats, error) {
	return s.repo.GetStats(ctx, phoneNumber)
}

// DeleteHistory removes everything recorded about a number. Verdicts
// already cached elsewhere are untouched; they expire on their TTL.
func (s *screeningService) DeleteHistory(ctx context.Context, phoneNumber string) error {
	return s.repo.DeleteScreenings(ctx, phoneNumber)
}

// lookupVerdict consults the shared cache before the engine. Cache
// errors are logged and ignored: the engine is always authoritative.
func (s *screeningService) lookupVerdict(ctx context.Context, rawPhone string, m engine.Mode) engine.Verdict {
	if s.cache != nil {
		cached, err := s.cache.GetVerdict(ctx, m.String(), rawPhone)
		if err != nil {
			log.Printf("⚠️  verdict cache read failed: %v", err)
		} else if cached != nil {
			metrics.CacheHits.WithLabelValues("hit").Inc()
			return *cached
		} else {
			metrics.CacheHits.WithLabelValues("miss").Inc()
		}
	}

	verdict := s.engine.Classify(rawPhone, m)

	if s.cache != nil {
		if err := s.cache.SetVerdict(ctx, m.String(), rawPhone, verdict); err != nil {
			log.Printf("⚠️  verdict cache write failed: %v", err)
		}
	}
	return verdict
}

func (s *screeningService) updateStats(ctx context.Context, screening *domain.Screening) error {
	stats, err := s.repo.GetStats(ctx, screening.PhoneNumber)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &domain.NumberStats{PhoneNumber: screening.PhoneNumber}
	}

	stats.TotalScreenings++
	if screening.Blocked {
		stats.BlockedCount++
		stats.LastReason = screening.Reason
	}
	stats.LastSeen = screening.ScreenedAt

	return s.repo.UpsertStats(ctx, stats, statsTTLSeconds)
}

// enrich fills the E.164 form and country of the screened number when
// libphonenumber can parse it. Sentinels and malformed input stay as
// received.
func enrich(screening *domain.Screening) {
	num, err := phonenumbers.Parse(screening.PhoneNumber, "")
	if err != nil {
		return
	}
	screening.E164 = phonenumbers.Format(num, phonenumbers.E164)
	screening.CountryCode = phonenumbers.GetRegionCodeForNumber(num)
}
