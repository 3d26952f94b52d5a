package engine

// ReasonCode explains why a number was blocked. It is a closed set:
// a verdict carries exactly one of these, or none when the call is allowed.
type ReasonCode string

const (
	ReasonRepeatingDigits   ReasonCode = "REPEATING_DIGITS"
	ReasonShortNumber       ReasonCode = "SHORT_NUMBER"
	ReasonSuspiciousPattern ReasonCode = "SUSPICIOUS_PATTERN"
	ReasonKnownSpam         ReasonCode = "KNOWN_SPAM"
	ReasonPrivateNumber     ReasonCode = "PRIVATE_NUMBER"
	ReasonInternationalScam ReasonCode = "INTERNATIONAL_SCAM"
	ReasonSequentialNumber  ReasonCode = "SEQUENTIAL_NUMBER"
	ReasonMassDialing       ReasonCode = "MASS_DIALING"
)

// ThreatType is the display-facing category a reason maps into.
type ThreatType string

const (
	ThreatSuspiciousPattern ThreatType = "SUSPICIOUS_PATTERN"
	ThreatFraud             ThreatType = "FRAUD"
	ThreatBlacklist         ThreatType = "BLACKLIST"
	ThreatAnonymous         ThreatType = "ANONYMOUS"
	ThreatInternational     ThreatType = "INTERNATIONAL"
	ThreatSpam              ThreatType = "SPAM"
)

// ThreatType categorizes a block reason for display purposes.
// An empty (no-reason) code maps to the default SPAM category.
func (r ReasonCode) ThreatType() ThreatType {
	switch r {
	case ReasonRepeatingDigits, ReasonSequentialNumber:
		return ThreatSuspiciousPattern
	case ReasonShortNumber:
		return ThreatFraud
	case ReasonKnownSpam, ReasonMassDialing:
		return ThreatBlacklist
	case ReasonPrivateNumber:
		return ThreatAnonymous
	case ReasonInternationalScam:
		return ThreatInternational
	case ReasonSuspiciousPattern:
		return ThreatSpam
	}
	return ThreatSpam
}
