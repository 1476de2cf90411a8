package types

import "strings"

// Severity classifies an incident's outcome. "Fatality" is the canonical
// name; upstream feeds historically used "Death" and it is accepted as a
// legacy alias at the API boundary.
type Severity string

const (
	SeverityFatality Severity = "Fatality"
	SeverityAccident Severity = "Accident"
)

// legacySeverityAliases maps retired severity spellings to canonical ones
var legacySeverityAliases = map[string]Severity{
	"death": SeverityFatality,
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is a canonical value
func (s Severity) IsValid() bool {
	switch s {
	case SeverityFatality, SeverityAccident:
		return true
	default:
		return false
	}
}

// ParseSeverity normalizes a severity string, resolving legacy aliases.
// The second return value is false when the input maps to no known severity.
func ParseSeverity(raw string) (Severity, bool) {
	trimmed := strings.TrimSpace(raw)
	if sev := Severity(trimmed); sev.IsValid() {
		return sev, true
	}
	if sev, ok := legacySeverityAliases[strings.ToLower(trimmed)]; ok {
		return sev, true
	}
	return "", false
}

// SeverityFromCategory derives the severity from a "<base>/<severity>"
// category string. Categories without a recognized suffix yield false.
func SeverityFromCategory(category string) (Severity, bool) {
	idx := strings.LastIndex(category, "/")
	if idx < 0 || idx == len(category)-1 {
		return "", false
	}
	return ParseSeverity(category[idx+1:])
}
