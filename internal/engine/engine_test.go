package engine_test

import (
	"testing"

	"github.com/callsentry/callscreen/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault() *engine.Engine {
	return engine.New(engine.DefaultLists())
}

func TestClassifySmart(t *testing.T) {
	cases := []struct {
		Name    string
		Number  string
		Blocked bool
		Reason  engine.ReasonCode
	}{
		{"seven repeated ones", "+79991111111", true, engine.ReasonRepeatingDigits},
		{"six digits is short", "+712345", true, engine.ReasonShortNumber},
		{"quad zero block", "+74951230000", true, engine.ReasonSuspiciousPattern},
		{"triple nine block", "+79261239993", true, engine.ReasonSuspiciousPattern},
		{"hidden caller sentinel", "unknown", true, engine.ReasonPrivateNumber},
		{"private sentinel", "private", true, engine.ReasonPrivateNumber},
		{"clir control sequence", "#31#+79261234567", true, engine.ReasonPrivateNumber},
		{"nanp 555 scam", "+15551234567", true, engine.ReasonInternationalScam},
		{"known spam list hit", "+74952271533", true, engine.ReasonKnownSpam},
		{"clean uk number", "+441234567890", false, ""},
		{"clean mobile", "+79261234568", false, ""},
		{"empty input", "", false, ""},
		{"letters only", "spam-caller", false, ""},
	}

	e := newDefault()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			v := e.Classify(tc.Number, engine.ModeSmart)
			assert.Equal(t, tc.Blocked, v.Blocked)
			assert.Equal(t, tc.Reason, v.Reason)
		})
	}
}

// A number that is both short and carries a "0000" pattern must report
// SHORT_NUMBER: the digit-count check runs before the substring check.
func TestSmartRulePrecedence(t *testing.T) {
	e := newDefault()

	v := e.Classify("+10000", engine.ModeSmart)
	require.True(t, v.Blocked)
	assert.Equal(t, engine.ReasonShortNumber, v.Reason)

	// Seven repeated digits outrank everything, including short/pattern.
	v = e.Classify("0000000", engine.ModeSmart)
	require.True(t, v.Blocked)
	assert.Equal(t, engine.ReasonRepeatingDigits, v.Reason)
}

func TestClassifyAggressive(t *testing.T) {
	cases := []struct {
		Name    string
		Number  string
		Blocked bool
		Reason  engine.ReasonCode
	}{
		{"ascending run inside national number", "+79161234567", true, engine.ReasonSequentialNumber},
		{"descending run", "+79876543210", true, engine.ReasonSequentialNumber},
		{"mass dialing prefix", "+79005511243", true, engine.ReasonMassDialing},
		{"foreign prefix", "+442071838750", true, engine.ReasonInternationalScam},
		{"repeated pair", "+712121212148", true, engine.ReasonSuspiciousPattern},
		{"smart rule still first", "+79991111111", true, engine.ReasonRepeatingDigits},
		{"clean mobile", "+79261234568", false, ""},
		{"domestic without plus", "84951237482", false, ""},
	}

	e := newDefault()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			v := e.Classify(tc.Number, engine.ModeAggressive)
			assert.Equal(t, tc.Blocked, v.Blocked)
			assert.Equal(t, tc.Reason, v.Reason)
		})
	}
}

// Whatever Smart blocks, Aggressive must block with the same reason.
func TestAggressiveSupersetOfSmart(t *testing.T) {
	corpus := []string{
		"+79991111111", "+712345", "+74951230000", "unknown", "private",
		"#31#+79261234567", "+15551234567", "+74952271533", "+441234567890",
		"+79261234568", "", "spam-caller", "+79161234567", "+79005511243",
		"+712121212148", "84951237482", "+10000", "0000000",
	}

	e := newDefault()
	for _, number := range corpus {
		smart := e.Classify(number, engine.ModeSmart)
		if !smart.Blocked {
			continue
		}
		aggressive := e.Classify(number, engine.ModeAggressive)
		require.True(t, aggressive.Blocked, "aggressive allowed %q which smart blocks", number)
		assert.Equal(t, smart.Reason, aggressive.Reason, "reason diverged for %q", number)
	}
}

func TestClassifyPermissive(t *testing.T) {
	cases := []struct {
		Name    string
		Number  string
		Blocked bool
		Reason  engine.ReasonCode
	}{
		{"high risk list hit", "+712345", true, engine.ReasonKnownSpam},
		{"nine repeated digits", "+7999999999", true, engine.ReasonRepeatingDigits},
		{"four digits is short", "1234", true, engine.ReasonShortNumber},
		{"seven repeats allowed here", "+79991111111", false, ""},
		{"six digits allowed here", "+791234", false, ""},
		{"sentinel allowed here", "unknown", false, ""},
		{"known spam list not consulted", "+74952271533", false, ""},
	}

	e := newDefault()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			v := e.Classify(tc.Number, engine.ModePermissive)
			assert.Equal(t, tc.Blocked, v.Blocked)
			assert.Equal(t, tc.Reason, v.Reason)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	inputs := []string{
		"", " ", "+", "unknown", "++--##", "+79991111111", "+441234567890",
		"#31#", "abc123def456", "\x00\xff", "+1 (555) 123-4567",
	}
	modes := []engine.Mode{engine.ModeSmart, engine.ModeAggressive, engine.ModePermissive}

	e := newDefault()
	for _, number := range inputs {
		for _, mode := range modes {
			first := e.Classify(number, mode)
			second := e.Classify(number, mode)
			assert.Equal(t, first, second, "verdict unstable for %q in %s", number, mode)
			if !first.Blocked {
				assert.Empty(t, first.Reason)
			}
		}
	}
}

func TestInjectedLists(t *testing.T) {
	e := engine.New(engine.Lists{
		KnownSpam: []string{"+31201234567"},
		HighRisk:  []string{"+31207654321"},
	})

	v := e.Classify("+31201234567", engine.ModeSmart)
	require.True(t, v.Blocked)
	assert.Equal(t, engine.ReasonKnownSpam, v.Reason)

	v = e.Classify("+31207654321", engine.ModePermissive)
	require.True(t, v.Blocked)
	assert.Equal(t, engine.ReasonKnownSpam, v.Reason)

	// The built-in lists are gone once custom ones are injected.
	assert.False(t, e.Classify("+74952271533", engine.ModeSmart).Blocked)
}

func TestSeparatorsAreIgnoredForDigitChecks(t *testing.T) {
	e := newDefault()

	// Repeated digits split by separators still form one run.
	v := e.Classify("+7 (999) 11-11-111", engine.ModeSmart)
	require.True(t, v.Blocked)
	assert.Equal(t, engine.ReasonRepeatingDigits, v.Reason)
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		In   string
		Mode engine.Mode
		Err  bool
	}{
		{"smart", engine.ModeSmart, false},
		{"SMART", engine.ModeSmart, false},
		{" Aggressive ", engine.ModeAggressive, false},
		{"permissive", engine.ModePermissive, false},
		{"", engine.ModeSmart, false},
		{"paranoid", engine.ModeSmart, true},
	}
	for _, tc := range cases {
		m, err := engine.ParseMode(tc.In)
		if tc.Err {
			assert.Error(t, err, "input %q", tc.In)
			continue
		}
		require.NoError(t, err, "input %q", tc.In)
		assert.Equal(t, tc.Mode, m, "input %q", tc.In)
	}
}

func TestReasonThreatType(t *testing.T) {
	cases := map[engine.ReasonCode]engine.ThreatType{
		engine.ReasonRepeatingDigits:   engine.ThreatSuspiciousPattern,
		engine.ReasonSequentialNumber:  engine.ThreatSuspiciousPattern,
		engine.ReasonShortNumber:       engine.ThreatFraud,
		engine.ReasonKnownSpam:         engine.ThreatBlacklist,
		engine.ReasonMassDialing:       engine.ThreatBlacklist,
		engine.ReasonPrivateNumber:     engine.ThreatAnonymous,
		engine.ReasonInternationalScam: engine.ThreatInternational,
		engine.ReasonSuspiciousPattern: engine.ThreatSpam,
		engine.ReasonCode(""):          engine.ThreatSpam,
	}
	for reason, want := range cases {
		assert.Equal(t, want, reason.ThreatType(), "reason %q", reason)
	}
}
