package types

import "strings"

// TaskFile pairs an absolute file path with its decoded frontmatter and raw
// body text. Lifecycle: created by the create flow, mutated in place by tag
// operations, never deleted by the engine.
// Implements: prd001-tag-engine-core R4.
type TaskFile struct {
	Path   string
	Fields *FrontMatter
	Body   string
}

// Title returns the display title for the task: the title frontmatter field
// when it is a string, else the first markdown heading line of the body,
// else the empty string.
func (t TaskFile) Title() string {
	if t.Fields != nil {
		if v, ok := t.Fields.Get(KeyTitle); ok && v.Kind == KindString {
			return v.Str
		}
	}
	for _, line := range strings.Split(t.Body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
