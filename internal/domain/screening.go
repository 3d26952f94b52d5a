package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/callsentry/callscreen/internal/engine"
)

// Screening is one classification event. It records the verdict the
// engine returned for a single incoming number.
// This struct maps to the 'screenings' table in ScyllaDB.
type Screening struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"` // raw caller string, kept as received

	// E164 and CountryCode are best-effort enrichment from libphonenumber.
	// They stay empty when the raw input is a sentinel or unparseable;
	// the verdict never depends on them.
	E164        string `json:"e164,omitempty" db:"e164"`
	CountryCode string `json:"country_code,omitempty" db:"country_code"` // ISO 3166-1 alpha-2

	Mode       string            `json:"mode" db:"mode"`
	Blocked    bool              `json:"blocked" db:"blocked"`
	Reason     engine.ReasonCode `json:"reason,omitempty" db:"reason"`
	ThreatType engine.ThreatType `json:"threat_type" db:"threat_type"`
	ScreenedAt time.Time         `json:"screened_at" db:"screened_at"`
}

// NumberStats is the aggregate state of one number across screenings.
// This struct maps to the 'number_stats' table in ScyllaDB.
type NumberStats struct {
	PhoneNumber     string            `json:"phone_number" db:"phone_number"`
	TotalScreenings int               `json:"total_screenings" db:"total_screenings"`
	BlockedCount    int               `json:"blocked_count" db:"blocked_count"`
	LastReason      engine.ReasonCode `json:"last_reason,omitempty" db:"last_reason"`
	LastSeen        time.Time         `json:"last_seen" db:"last_seen"`
}

// NewScreening is a factory to create a clean screening instance from a
// verdict. Enrichment fields (E164, CountryCode) are filled by the
// caller when available.
func NewScreening(rawPhone string, mode engine.Mode, v engine.Verdict) *Screening {
	return &Screening{
		ID:          uuid.New(),
		PhoneNumber: rawPhone,
		Mode:        mode.String(),
		Blocked:     v.Blocked,
		Reason:      v.Reason,
		ThreatType:  v.Reason.ThreatType(),
		ScreenedAt:  time.Now().UTC(),
	}
}
