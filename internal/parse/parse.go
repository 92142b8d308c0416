// Package parse turns raw command-line tokens into typed values.
// Implements: prd002-value-parser (assignment splitting, typed resolution);
//
//	docs/ARCHITECTURE § Value Parser.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/en"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Assignment is one key=value token split at the first equals sign. The raw
// value keeps any embedded '=' characters verbatim.
type Assignment struct {
	Key string
	Raw string
}

// SplitAssignment splits token at the first '='. A token without '=' is a
// format error; an empty key is an empty-key error. Both are reported to the
// caller, never silently dropped.
func SplitAssignment(token string) (Assignment, error) {
	i := strings.Index(token, "=")
	if i < 0 {
		return Assignment{}, fmt.Errorf("%w: %q is not a key=value pair", types.ErrInvalidFormat, token)
	}
	if i == 0 {
		return Assignment{}, fmt.Errorf("%w: %q", types.ErrEmptyKey, token)
	}
	return Assignment{Key: token[:i], Raw: token[i+1:]}, nil
}

var (
	// numberPattern matches a complete numeric literal: optional leading
	// minus, digits, at most one decimal point, no trailing characters.
	numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

	// offsetPattern matches a signed calendar offset such as +3d or -2w.
	offsetPattern = regexp.MustCompile(`^([+-])([0-9]+)([dwmy])$`)
)

// Parser resolves raw strings to typed values. Zero-config; construct with
// NewParser so the relative-date rules are loaded.
type Parser struct {
	now func() time.Time
	w   *when.Parser
}

// NewParser returns a Parser using the system clock.
func NewParser() *Parser {
	w := when.New(nil)
	w.Add(en.CasualDate(rules.Override))
	return &Parser{now: time.Now, w: w}
}

// NewParserAt returns a Parser with a fixed clock, for tests.
func NewParserAt(now func() time.Time) *Parser {
	p := NewParser()
	p.now = now
	return p
}

// Value resolves raw into a typed value. Total function: every input
// produces some value, there is no error path. Rules apply in order and the
// first match wins:
//
//  1. empty string            -> String ""
//  2. true/false (any case)   -> Bool
//  3. numeric literal         -> Number ("001" parses as 1; lossy, accepted)
//  4. contains a comma        -> List (split on ',', segments trimmed)
//  5. relative-date keyword or signed offset -> Date (RFC 3339 text)
//  6. anything else           -> String, verbatim
//
// Rule 4 precedes rules 5 and 6: a comma wins even inside an otherwise
// date-like or prose token ("Hello, World" becomes a two-element list).
func (p *Parser) Value(raw string) types.Value {
	if raw == "" {
		return types.String("")
	}
	switch strings.ToLower(raw) {
	case "true":
		return types.Bool(true)
	case "false":
		return types.Bool(false)
	}
	if numberPattern.MatchString(raw) {
		n, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return types.Number(n)
		}
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return types.List(parts)
	}
	if t, ok := p.relativeDate(raw); ok {
		return types.Date(t.Format(time.RFC3339))
	}
	return types.String(raw)
}

// relativeDate resolves raw against the current moment when it is a signed
// offset (±N days/weeks/months/years) or a casual-date keyword such as
// "today", "tomorrow", or "yesterday". The keyword must cover the whole
// token; partial matches inside prose fall through to the string rule.
func (p *Parser) relativeDate(raw string) (time.Time, bool) {
	now := p.now()

	if m := offsetPattern.FindStringSubmatch(strings.ToLower(raw)); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
		if m[1] == "-" {
			n = -n
		}
		switch m[3] {
		case "d":
			return now.AddDate(0, 0, n), true
		case "w":
			return now.AddDate(0, 0, 7*n), true
		case "m":
			return now.AddDate(0, n, 0), true
		case "y":
			return now.AddDate(n, 0, 0), true
		}
		return time.Time{}, false
	}

	r, err := p.w.Parse(raw, now)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	if r.Index != 0 || len(r.Text) != len(raw) {
		return time.Time{}, false
	}
	return r.Time, true
}
