package types

import "testing"

func TestFrontMatterOrder(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("date", String("2026-08-31"))
	fm.Set("created", String("2026-08-31T10:00:00Z"))
	fm.Set("status", String("open"))

	// Updating an existing key keeps its position.
	fm.Set("date", String("2026-09-01"))
	// New keys append after all existing keys.
	fm.Set("priority", Number(1))

	want := []string{"date", "created", "status", "priority"}
	got := fm.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFrontMatterDelete(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("a", Number(1))
	fm.Set("b", Number(2))

	if !fm.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if fm.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	if fm.Len() != 1 {
		t.Errorf("Len() = %d, want 1", fm.Len())
	}
	if _, ok := fm.Get("a"); ok {
		t.Error("Get(a) found deleted key")
	}
}

func TestFrontMatterSetNormalizesDate(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("due", Date("2026-09-01T00:00:00Z"))

	v, ok := fm.Get("due")
	if !ok {
		t.Fatal("Get(due) missing")
	}
	if v.Kind != KindString {
		t.Errorf("stored kind = %q, want %q", v.Kind, KindString)
	}
	if v.Str != "2026-09-01T00:00:00Z" {
		t.Errorf("stored value = %q", v.Str)
	}
}

func TestFrontMatterCloneIsDeep(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("tags", List([]string{"a", "b"}))
	nested := NewFrontMatter()
	nested.Set("x", Number(1))
	fm.Set("meta", Object(nested))

	clone := fm.Clone()
	if !fm.Equal(clone) {
		t.Fatal("Clone() not equal to original")
	}

	v, _ := clone.Get("tags")
	v.List[0] = "mutated"
	orig, _ := fm.Get("tags")
	if orig.List[0] != "a" {
		t.Error("mutating clone list changed original")
	}
}

func TestIsProtected(t *testing.T) {
	for _, k := range []string{KeyDate, KeyCreated} {
		if !IsProtected(k) {
			t.Errorf("IsProtected(%q) = false, want true", k)
		}
	}
	for _, k := range []string{KeyID, KeyTitle, "status", ""} {
		if IsProtected(k) {
			t.Errorf("IsProtected(%q) = true, want false", k)
		}
	}
}
