package types

// Value kinds determine which payload field of a Value is meaningful.
// Implements: prd001-tag-engine-core R2.
const (
	KindString = "string"
	KindNumber = "number"
	KindBool   = "bool"
	KindList   = "list"
	KindDate   = "date"
	KindObject = "object"
	KindNull   = "null"
)

// validKinds is the set of recognized value kinds.
var validKinds = map[string]bool{
	KindString: true,
	KindNumber: true,
	KindBool:   true,
	KindList:   true,
	KindDate:   true,
	KindObject: true,
	KindNull:   true,
}

// IsValidKind reports whether kind is one of the Kind constants.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}

// Value is a tagged union over the value kinds. Kind selects the payload
// field; the remaining fields hold their zero values. Callers switch on Kind
// exhaustively rather than type-asserting.
// Implements: prd001-tag-engine-core R2.
type Value struct {
	Kind string
	Str  string       // KindString and KindDate (RFC 3339 text)
	Num  float64      // KindNumber
	Bool bool         // KindBool
	List []string     // KindList
	Obj  *FrontMatter // KindObject
}

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// List returns a string-array Value.
func List(items []string) Value { return Value{Kind: KindList, List: items} }

// Date returns a date Value holding an RFC 3339 timestamp string.
func Date(iso string) Value { return Value{Kind: KindDate, Str: iso} }

// Object returns a nested-object Value.
func Object(fm *FrontMatter) Value { return Value{Kind: KindObject, Obj: fm} }

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Equal reports whether two Values have the same kind and payload.
// Object payloads are compared recursively.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString, KindDate:
		return v.Str == o.Str
	case KindNumber:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != o.List[i] {
				return false
			}
		}
		return true
	case KindObject:
		return v.Obj.Equal(o.Obj)
	case KindNull:
		return true
	}
	return false
}

// Interface converts the Value to a plain Go value for JSON output.
// Nested objects become map[string]any; null becomes nil.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString, KindDate:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindList:
		return v.List
	case KindObject:
		return v.Obj.Map()
	}
	return nil
}
