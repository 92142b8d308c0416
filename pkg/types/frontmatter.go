package types

// System-managed frontmatter keys.
// Implements: prd001-tag-engine-core R3.
const (
	KeyID      = "id"
	KeyTitle   = "title"
	KeyDate    = "date"
	KeyCreated = "created"
)

// protectedKeys are fields that remove and clear operations must never drop.
var protectedKeys = map[string]bool{
	KeyDate:    true,
	KeyCreated: true,
}

// IsProtected reports whether key is a protected frontmatter field.
func IsProtected(key string) bool {
	return protectedKeys[key]
}

// ProtectedKeys lists the protected frontmatter fields.
var ProtectedKeys = []string{KeyDate, KeyCreated}

// FrontMatter is an ordered mapping from field keys to Values. Iteration
// order is insertion order; Set appends new keys rather than sorting.
// Implements: prd001-tag-engine-core R3.
type FrontMatter struct {
	keys []string
	vals map[string]Value
}

// NewFrontMatter returns an empty FrontMatter.
func NewFrontMatter() *FrontMatter {
	return &FrontMatter{vals: make(map[string]Value)}
}

// Len returns the number of fields.
func (f *FrontMatter) Len() int {
	return len(f.keys)
}

// Keys returns the field keys in insertion order.
func (f *FrontMatter) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Get returns the value for key and whether the key is present.
func (f *FrontMatter) Get(key string) (Value, bool) {
	v, ok := f.vals[key]
	return v, ok
}

// Set stores a value under key. Existing keys keep their position; new keys
// are appended after all existing keys. Date values normalize to String on
// write: the frontmatter value domain carries dates as plain text.
func (f *FrontMatter) Set(key string, v Value) {
	if v.Kind == KindDate {
		v = String(v.Str)
	}
	if _, ok := f.vals[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (f *FrontMatter) Delete(key string) bool {
	if _, ok := f.vals[key]; !ok {
		return false
	}
	delete(f.vals, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns a deep copy of the FrontMatter.
func (f *FrontMatter) Clone() *FrontMatter {
	out := NewFrontMatter()
	for _, k := range f.keys {
		v := f.vals[k]
		if v.Kind == KindObject && v.Obj != nil {
			v = Object(v.Obj.Clone())
		}
		if v.Kind == KindList {
			items := make([]string, len(v.List))
			copy(items, v.List)
			v = List(items)
		}
		out.Set(k, v)
	}
	return out
}

// Equal reports whether two FrontMatters hold the same keys in the same
// order with equal values.
func (f *FrontMatter) Equal(o *FrontMatter) bool {
	if f == nil || o == nil {
		return f == o
	}
	if len(f.keys) != len(o.keys) {
		return false
	}
	for i, k := range f.keys {
		if o.keys[i] != k {
			return false
		}
		if !f.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}

// Map converts the mapping to plain Go values for JSON output.
// Field order is lost; use Keys for ordered traversal.
func (f *FrontMatter) Map() map[string]any {
	out := make(map[string]any, len(f.keys))
	for _, k := range f.keys {
		out[k] = f.vals[k].Interface()
	}
	return out
}
