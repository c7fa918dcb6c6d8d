// Package standards extracts the technical standards ("normas") a
// certifying body claims to have verified in a certificate. Extraction is
// driven by a per-issuer grammar: two textual boundaries delimit the
// standards section, and a strategy decides how references inside it are
// parsed.
package standards

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/orcnlabs/certcheck/internal/normtext"
)

// Strategy selects how the standards section is parsed.
type Strategy int

const (
	// Custom captures (marker, number) pairs and emits canonical
	// "<kind><number>" codes such as "ato123" or "resolucao456".
	Custom Strategy = iota
	// Generic collects raw reference literals verbatim (decree numbers,
	// ISO/IEC/ABNT NBR citations).
	Generic
)

// Rule is the extraction grammar for one issuer. Start and End are
// case-insensitive regular expressions locating the standards section;
// Markers are the literal tokens that signal parseable references under the
// Custom strategy.
type Rule struct {
	Issuer   string
	Start    string
	End      string
	Strategy Strategy
	Markers  []string
}

type compiledRule struct {
	strategy Strategy
	start    *regexp.Regexp
	end      *regexp.Regexp
	markers  []string
	markerRe *regexp.Regexp
}

// Extractor applies issuer rules to document text. Construct with
// NewExtractor (injectable table, for tests) or Default (built-in table).
type Extractor struct {
	rules map[string]*compiledRule
}

// NewExtractor compiles the given rule table. When the table carries more
// than one rule for an issuer only the first is effective.
func NewExtractor(rules []Rule) (*Extractor, error) {
	compiled := make(map[string]*compiledRule, len(rules))
	for _, r := range rules {
		if _, dup := compiled[r.Issuer]; dup {
			continue
		}
		cr := &compiledRule{strategy: r.Strategy, markers: append([]string(nil), r.Markers...)}
		var err error
		if cr.start, err = regexp.Compile(`(?i)` + r.Start); err != nil {
			return nil, fmt.Errorf("rule %s: start boundary: %w", r.Issuer, err)
		}
		if cr.end, err = regexp.Compile(`(?i)` + r.End); err != nil {
			return nil, fmt.Errorf("rule %s: end boundary: %w", r.Issuer, err)
		}
		if r.Strategy == Custom {
			if len(r.Markers) == 0 {
				return nil, fmt.Errorf("rule %s: custom strategy without markers", r.Issuer)
			}
			cr.markerRe = markerPattern(r.Markers)
		}
		compiled[r.Issuer] = cr
	}
	return &Extractor{rules: compiled}, nil
}

// Default returns an Extractor over the built-in issuer rule table.
func Default() *Extractor {
	e, err := NewExtractor(DefaultRules())
	if err != nil {
		// The built-in table is static and covered by tests.
		panic(err)
	}
	return e
}

// Extract returns the deduplicated standard codes found in the document, in
// insertion order. issuerID may be empty ("issuer unknown"); the generic
// patterns then run over the entire text. An empty result is a legitimate
// "nothing found" outcome, never an error.
func (e *Extractor) Extract(documentText, issuerID string) []string {
	if issuerID != "" {
		if rule, ok := e.rules[issuerID]; ok {
			section, found := rule.section(documentText)
			if !found {
				return nil
			}
			if rule.strategy == Custom {
				return rule.extractCustom(section)
			}
			return extractGeneric(section)
		}
	}
	return extractGeneric(documentText)
}

// section returns the text strictly between the end of the first start-
// boundary match and the start of the first end-boundary match. Either
// boundary missing, or the boundaries out of order, yields found=false.
func (r *compiledRule) section(text string) (string, bool) {
	start := r.start.FindStringIndex(text)
	if start == nil {
		return "", false
	}
	end := r.end.FindStringIndex(text)
	if end == nil || end[0] < start[1] {
		return "", false
	}
	return text[start[1]:end[0]], true
}

// extractCustom parses "<kind><number>" codes out of the section. Any line
// containing a marker triggers a single scan of the whole section; the
// full-section re-scan is idempotent because results are deduplicated.
func (r *compiledRule) extractCustom(section string) []string {
	if !r.anyLineHasMarker(section) {
		return nil
	}
	var codes []string
	seen := make(map[string]struct{})
	for _, m := range r.markerRe.FindAllStringSubmatch(section, -1) {
		code := canonicalKind(m[1]) + m[2]
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

func (r *compiledRule) anyLineHasMarker(section string) bool {
	for _, line := range strings.Split(section, "\n") {
		lower := strings.ToLower(line)
		for _, marker := range r.markers {
			if strings.Contains(lower, strings.ToLower(marker)) {
				return true
			}
		}
	}
	return false
}

// canonicalKind maps a matched marker to its canonical kind: any marker
// carrying "resolu" (resolução, resoluções, resolution) collapses to
// "resolucao"; every other marker is its own normalized form.
func canonicalKind(marker string) string {
	kind := normtext.Normalize(marker)
	if strings.Contains(kind, "resolu") {
		return "resolucao"
	}
	return kind
}

// markerPattern builds the capture regexp for a marker set. It tolerates the
// ordinal spellings seen in certificates (Nº, N°, No, No.) and an optional
// issuing-body qualifier ("RESOLUÇÃO da ANATEL nº 680").
func markerPattern(markers []string) *regexp.Regexp {
	quoted := make([]string, len(markers))
	for i, m := range markers {
		quoted[i] = regexp.QuoteMeta(m)
	}
	// Longest alternative first so overlapping markers match whole tokens.
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\s*(?:da\s+\w+\s+)?(?:n[º°o]\.?)?[\s:.]*(\d+)`)
}

// genericPatterns are the reference literals recognized without an
// issuer-specific grammar: organizational decree/resolution numbers and
// international standard-body citations. Matches are kept verbatim,
// revision suffixes included ("ISO 9001:2015").
var genericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bATO\s*(?:n[º°o]\.?)?[\s:.]*\d+[\w.\-/]*`),
	regexp.MustCompile(`(?i)\bRESOLU(?:ÇÃO|ÇÕES|CAO|COES)\s*(?:da\s+\w+\s+)?(?:n[º°o]\.?)?[\s:.]*\d+[\w.\-/]*`),
	regexp.MustCompile(`(?i)\bISO\s*\d+[\w.\-/:]*`),
	regexp.MustCompile(`(?i)\bIEC\s*\d+[\w.\-/:]*`),
	regexp.MustCompile(`(?i)\bABNT\s*NBR\s*\d+[\w.\-/:]*`),
}

func extractGeneric(text string) []string {
	var codes []string
	seen := make(map[string]struct{})
	for _, pattern := range genericPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			codes = append(codes, m)
		}
	}
	return codes
}
