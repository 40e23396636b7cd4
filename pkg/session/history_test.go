package session

import (
	"reflect"
	"testing"
)

func TestBlendMergesAndStoresBack(t *testing.T) {
	h := newHistoryStore()
	h.blend("recent", []string{"x", "y"})

	got := h.blend("recent", []string{"y", "z"})
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("blend() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(h.get("recent"), want) {
		t.Errorf("stored entry = %v, want %v", h.get("recent"), want)
	}
}

func TestBlendDedupesFresh(t *testing.T) {
	h := newHistoryStore()
	got := h.blend("recent", []string{"a", "a", "b"})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("blend() = %v, want %v", got, want)
	}
}

func TestBlendIsPerProvider(t *testing.T) {
	h := newHistoryStore()
	h.blend("one", []string{"a"})
	h.blend("two", []string{"b"})
	if !reflect.DeepEqual(h.get("one"), []string{"a"}) {
		t.Errorf("entry for one = %v", h.get("one"))
	}
	if !reflect.DeepEqual(h.get("two"), []string{"b"}) {
		t.Errorf("entry for two = %v", h.get("two"))
	}
}

func TestClearDropsEverything(t *testing.T) {
	h := newHistoryStore()
	h.blend("recent", []string{"a"})
	h.clear()
	if got := h.get("recent"); len(got) != 0 {
		t.Errorf("entry after clear = %v, want empty", got)
	}
}
