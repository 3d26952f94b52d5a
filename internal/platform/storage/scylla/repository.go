package scylla

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/callsentry/callscreen/internal/domain"
	"github.com/callsentry/callscreen/internal/engine"
	"github.com/callsentry/callscreen/internal/service"
)

type scyllaRepository struct {
	session *gocql.Session
}

func NewScyllaRepository(session *gocql.Session) service.Repository {
	return &scyllaRepository{
		session: session,
	}
}

func Connect(keyspace string, hosts ...string) (*gocql.Session, error) {
	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.ProtoVersion = 4
	cluster.Timeout = 5 * time.Second
	cluster.ConnectTimeout = 5 * time.Second

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scylla: %w", err)
	}

	log.Println("✅ Connected to ScyllaDB")
	return session, nil
}

func (r *scyllaRepository) SaveScreening(ctx context.Context, s *domain.Screening) error {
	query := `
        INSERT INTO screenings (id, phone_number, e164, country_code, mode, blocked, reason, threat_type, screened_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) USING TTL ?`

	const ttlSeconds = 47304000

	err := r.session.Query(query,
		s.ID.String(),
		s.PhoneNumber,
		s.E164,
		s.CountryCode,
		s.Mode,
		s.Blocked,
		string(s.Reason),
		string(s.ThreatType),
		s.ScreenedAt,
		ttlSeconds,
	).WithContext(ctx).Exec()

	if err != nil {
		return fmt.Errorf("scylla: failed to save screening: %w", err)
	}

	return nil
}

func (r *scyllaRepository) GetScreenings(ctx context.Context, phoneNumber string) ([]*domain.Screening, error) {
	query := `SELECT id, phone_number, e164, country_code, mode, blocked, reason, threat_type, screened_at
	          FROM screenings WHERE phone_number = ?`

	iter := r.session.Query(query, phoneNumber).WithContext(ctx).Iter()

	var screenings []*domain.Screening
	var id gocql.UUID
	var phone, e164, country, mode, reason, threat string
	var blocked bool
	var screenedAt time.Time

	for iter.Scan(&id, &phone, &e164, &country, &mode, &blocked, &reason, &threat, &screenedAt) {
		parsedID, _ := uuid.Parse(id.String())
		screenings = append(screenings, &domain.Screening{
			ID:          parsedID,
			PhoneNumber: phone,
			E164:        e164,
			CountryCode: country,
			Mode:        mode,
			Blocked:     blocked,
			Reason:      engine.ReasonCode(reason),
			ThreatType:  engine.ThreatType(threat),
			ScreenedAt:  screenedAt,
		})
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("scylla: failed to iterate screenings: %w", err)
	}

	return screenings, nil
}

func (r *scyllaRepository) GetStats(ctx context.Context, phoneNumber string) (*domain.NumberStats, error) {
	query := `
        SELECT phone_number, total_screenings, blocked_count, last_reason, last_seen
        FROM number_stats WHERE phone_number = ?`

	var s domain.NumberStats
	var reasonStr string

	err := r.session.Query(query, phoneNumber).WithContext(ctx).Scan(
		&s.PhoneNumber,
		&s.TotalScreenings,
		&s.BlockedCount,
		&reasonStr,
		&s.LastSeen,
	)

	if err == gocql.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("scylla: failed to get stats: %w", err)
	}

	s.LastReason = engine.ReasonCode(reasonStr)
	return &s, nil
}

func (r *scyllaRepository) UpsertStats(ctx context.Context, s *domain.NumberStats, ttlSeconds int) error {
	query := `
        UPDATE number_stats USING TTL ?
        SET total_screenings = ?,
            blocked_count = ?,
            last_reason = ?,
            last_seen = ?
        WHERE phone_number = ?`

	return r.session.Query(query,
		ttlSeconds,
		s.TotalScreenings,
		s.BlockedCount,
		string(s.LastReason),
		s.LastSeen,
		s.PhoneNumber,
	).WithContext(ctx).Exec()
}

// DeleteScreenings purges a number's history and aggregates together,
// so a partial failure cannot leave stats pointing at deleted rows.
func (r *scyllaRepository) DeleteScreenings(ctx context.Context, phoneNumber string) error {
	batch := r.session.NewBatch(gocql.LoggedBatch)
	batch.Query("DELETE FROM screenings WHERE phone_number = ?", phoneNumber)
	batch.Query("DELETE FROM number_stats WHERE phone_number = ?", phoneNumber)

	if err := r.session.ExecuteBatch(batch.WithContext(ctx)); err != nil {
		return fmt.Errorf("scylla: failed to delete screenings: %w", err)
	}
	return nil
}
