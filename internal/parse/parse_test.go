// Unit tests for assignment splitting and typed value resolution.
// Validates: prd002-value-parser (rules 1-6, rule ordering).
package parse

import (
	"errors"
	"testing"
	"time"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func fixedParser() *Parser {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return NewParserAt(func() time.Time { return base })
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantKey string
		wantRaw string
		wantErr error
	}{
		{"simple", "status=done", "status", "done", nil},
		{"empty value", "status=", "status", "", nil},
		{"embedded equals", "formula=x=y+z", "formula", "x=y+z", nil},
		{"empty key", "=oops", "", "", types.ErrEmptyKey},
		{"no equals", "status", "", "", types.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := SplitAssignment(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SplitAssignment(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if a.Key != tt.wantKey || a.Raw != tt.wantRaw {
				t.Errorf("SplitAssignment(%q) = (%q, %q), want (%q, %q)",
					tt.token, a.Key, a.Raw, tt.wantKey, tt.wantRaw)
			}
		})
	}
}

func TestValueScalars(t *testing.T) {
	p := fixedParser()
	tests := []struct {
		raw  string
		want types.Value
	}{
		{"", types.String("")},
		{"true", types.Bool(true)},
		{"FALSE", types.Bool(false)},
		{"True", types.Bool(true)},
		{"5.5", types.Number(5.5)},
		{"-10.3", types.Number(-10.3)},
		{"001", types.Number(1)},
		{"0", types.Number(0)},
		{"hello", types.String("hello")},
		{"truely", types.String("truely")},
		{"1.2.3", types.String("1.2.3")},
		{"-", types.String("-")},
		{"5d", types.String("5d")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := p.Value(tt.raw)
			if !got.Equal(tt.want) {
				t.Errorf("Value(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueCommaMakesList(t *testing.T) {
	p := fixedParser()
	tests := []struct {
		raw  string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a, b , c", []string{"a", "b", "c"}},
		// Comma wins over numeric-looking and boolean-looking segments.
		{"1,2,3", []string{"1", "2", "3"}},
		{"true,false", []string{"true", "false"}},
		// Comma wins over prose and date-like tokens too.
		{"Hello, World", []string{"Hello", "World"}},
		{"today, tomorrow", []string{"today", "tomorrow"}},
		{",", []string{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := p.Value(tt.raw)
			if !got.Equal(types.List(tt.want)) {
				t.Errorf("Value(%q) = %+v, want list %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueRelativeDates(t *testing.T) {
	p := fixedParser()

	today := p.Value("today")
	tomorrow := p.Value("TOMORROW")
	yesterday := p.Value("yesterday")

	for name, v := range map[string]types.Value{
		"today": today, "tomorrow": tomorrow, "yesterday": yesterday,
	} {
		if v.Kind != types.KindDate {
			t.Fatalf("Value(%q).Kind = %q, want %q", name, v.Kind, types.KindDate)
		}
		if _, err := time.Parse(time.RFC3339, v.Str); err != nil {
			t.Errorf("Value(%q) = %q, not RFC 3339: %v", name, v.Str, err)
		}
	}

	// Tomorrow resolves strictly later than today evaluated in the same call.
	if !(tomorrow.Str > today.Str) {
		t.Errorf("tomorrow %q not after today %q", tomorrow.Str, today.Str)
	}
	if !(yesterday.Str < today.Str) {
		t.Errorf("yesterday %q not before today %q", yesterday.Str, today.Str)
	}
}

func TestValueOffsets(t *testing.T) {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	p := NewParserAt(func() time.Time { return base })

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"+3d", base.AddDate(0, 0, 3)},
		{"-1d", base.AddDate(0, 0, -1)},
		{"+2w", base.AddDate(0, 0, 14)},
		{"+1m", base.AddDate(0, 1, 0)},
		{"-1y", base.AddDate(-1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := p.Value(tt.raw)
			want := types.Date(tt.want.Format(time.RFC3339))
			if !got.Equal(want) {
				t.Errorf("Value(%q) = %+v, want %+v", tt.raw, got, want)
			}
		})
	}
}

func TestValueDateKeywordMustCoverToken(t *testing.T) {
	p := fixedParser()
	for _, raw := range []string{"meet tomorrow", "tomorrow?", "call me today"} {
		got := p.Value(raw)
		if !got.Equal(types.String(raw)) {
			t.Errorf("Value(%q) = %+v, want verbatim string", raw, got)
		}
	}
}
