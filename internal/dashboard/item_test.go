package dashboard

import (
	"strings"
	"testing"

	"userdash/internal/model"
)

func TestRowCacheReusesUnchangedRows(t *testing.T) {
	rc := newRowCache()
	u := model.User{ID: 1, Name: "Leanne Graham", Email: "a@x.com"}

	first := rc.render(u, false)
	second := rc.render(u, false)
	if first != second {
		t.Fatal("identical inputs must yield identical rows")
	}
	// Cached entry untouched: same ID, same inputs, one entry.
	if len(rc.rows) != 1 {
		t.Fatalf("expected 1 cached row, got %d", len(rc.rows))
	}
}

func TestRowCacheRerendersOnRecordChange(t *testing.T) {
	rc := newRowCache()
	u := model.User{ID: 1, Name: "Leanne Graham", Email: "a@x.com"}

	before := rc.render(u, false)
	u.Name = "Leanne G."
	after := rc.render(u, false)
	if before == after {
		t.Fatal("changed record must re-render")
	}
	if !strings.Contains(after, "Leanne G.") {
		t.Fatalf("re-render lost the new name: %q", after)
	}
}

func TestRowCacheRerendersOnSelectionChange(t *testing.T) {
	rc := newRowCache()
	u := model.User{ID: 2, Name: "Ervin Howell", Email: "b@x.com"}

	plain := rc.render(u, false)
	selected := rc.render(u, true)
	if plain == selected {
		t.Fatal("selection change must re-render the row")
	}
}

func TestRowCacheClear(t *testing.T) {
	rc := newRowCache()
	rc.render(model.User{ID: 1, Name: "A"}, false)
	rc.render(model.User{ID: 2, Name: "B"}, false)
	rc.clear()
	if len(rc.rows) != 0 {
		t.Fatalf("expected empty cache after clear, got %d entries", len(rc.rows))
	}
}
