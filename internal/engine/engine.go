package engine

import (
	"strings"
)

// Verdict is the engine's output: a block decision plus the reason that
// produced it. Reason is empty when Blocked is false.
type Verdict struct {
	Blocked bool       `json:"blocked"`
	Reason  ReasonCode `json:"reason,omitempty"`
}

func blockedBy(r ReasonCode) Verdict {
	return Verdict{Blocked: true, Reason: r}
}

// Engine classifies raw phone number strings against one of three
// ordered rule lists. It holds only the immutable blacklists it was
// built with, so a single Engine is safe for concurrent use without
// coordination.
type Engine struct {
	knownSpam map[string]bool
	highRisk  map[string]bool
}

// New builds an Engine consulting the given lists. Membership is an
// exact match on the raw number string.
func New(lists Lists) *Engine {
	e := &Engine{
		knownSpam: make(map[string]bool, len(lists.KnownSpam)),
		highRisk:  make(map[string]bool, len(lists.HighRisk)),
	}
	for _, n := range lists.KnownSpam {
		e.knownSpam[n] = true
	}
	for _, n := range lists.HighRisk {
		e.highRisk[n] = true
	}
	return e
}

// Classify evaluates the rule list selected by mode against number.
// Rules run in a fixed order and the first match wins; if none match
// the call is allowed. Classify is total: any input, however malformed,
// produces exactly one verdict and never fails.
func (e *Engine) Classify(number string, mode Mode) Verdict {
	switch mode {
	case ModeAggressive:
		return e.classifyAggressive(number)
	case ModePermissive:
		return e.classifyPermissive(number)
	default:
		return e.classifySmart(number)
	}
}

func (e *Engine) classifySmart(number string) Verdict {
	digits := digitsOf(number)

	if longestDigitRun(digits) >= 7 {
		return blockedBy(ReasonRepeatingDigits)
	}
	// Zero digits means an unparseable or sentinel input; those fall
	// through to the textual rules below rather than counting as short.
	if len(digits) > 0 && len(digits) < 7 {
		return blockedBy(ReasonShortNumber)
	}
	if strings.Contains(number, "0000") || strings.Contains(number, "1111") || strings.Contains(number, "999") {
		return blockedBy(ReasonSuspiciousPattern)
	}
	if e.knownSpam[number] {
		return blockedBy(ReasonKnownSpam)
	}
	if number == "unknown" || number == "private" || strings.Contains(number, "#31#") {
		return blockedBy(ReasonPrivateNumber)
	}
	if strings.HasPrefix(number, "+1") && strings.Contains(number, "555") {
		return blockedBy(ReasonInternationalScam)
	}
	return Verdict{}
}

// classifyAggressive runs the full Smart list first, then its own
// extra checks. Anything Smart blocks, Aggressive blocks identically.
func (e *Engine) classifyAggressive(number string) Verdict {
	if v := e.classifySmart(number); v.Blocked {
		return v
	}

	digits := digitsOf(number)

	if longestSequentialRun(digits) >= 7 {
		return blockedBy(ReasonSequentialNumber)
	}
	if strings.HasPrefix(number, "+7900") {
		return blockedBy(ReasonMassDialing)
	}
	if strings.HasPrefix(number, "+") && !strings.HasPrefix(number, "+7") && !strings.HasPrefix(number, "+1") {
		return blockedBy(ReasonInternationalScam)
	}
	if hasRepeatedPair(digits, 4) {
		return blockedBy(ReasonSuspiciousPattern)
	}
	return Verdict{}
}

// classifyPermissive is an independent, narrower list; it does not
// reuse the Smart rules.
func (e *Engine) classifyPermissive(number string) Verdict {
	if e.highRisk[number] {
		return blockedBy(ReasonKnownSpam)
	}

	digits := digitsOf(number)

	if longestDigitRun(digits) >= 9 {
		return blockedBy(ReasonRepeatingDigits)
	}
	if len(digits) > 0 && len(digits) < 5 {
		return blockedBy(ReasonShortNumber)
	}
	return Verdict{}
}
