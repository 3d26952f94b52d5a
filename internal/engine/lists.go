package engine

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Lists holds the static reference blacklists the engine consults by
// exact membership test. They are fixed for the lifetime of an Engine;
// swap the data at construction time, not at runtime.
type Lists struct {
	// KnownSpam is consulted by the Smart (and therefore Aggressive)
	// rule list.
	KnownSpam []string
	// HighRisk is the narrower list consulted only by Permissive.
	HighRisk []string
}

// DefaultLists returns the built-in reference blacklists.
func DefaultLists() Lists {
	return Lists{
		KnownSpam: []string{
			"+74952271533",
			"+78005553535",
			"+79032856217",
			"+79251147620",
			"+74996481290",
		},
		HighRisk: []string{
			"+712345",
			"+79037841126",
			"+74950328415",
		},
	}
}

// OverrideFromFiles swaps in file-based lists where a path is given;
// an empty path keeps the existing data. A broken file is an error,
// never a silent fallback to the previous list.
func (l Lists) OverrideFromFiles(knownSpamPath, highRiskPath string) (Lists, error) {
	if knownSpamPath != "" {
		numbers, err := LoadList(knownSpamPath)
		if err != nil {
			return l, err
		}
		l.KnownSpam = numbers
	}
	if highRiskPath != "" {
		numbers, err := LoadList(highRiskPath)
		if err != nil {
			return l, err
		}
		l.HighRisk = numbers
	}
	return l, nil
}

// LoadList reads a blacklist file with one number per line. Blank
// lines and lines starting with "#" are skipped.
func LoadList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list %s: %w", path, err)
	}
	defer file.Close()

	var numbers []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list %s: %w", path, err)
	}
	return numbers, nil
}
