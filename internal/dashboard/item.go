package dashboard

import (
	"fmt"
	"hash/fnv"

	"userdash/internal/model"
)

// rowCache memoizes rendered user rows by ID. A row is rebuilt only when
// the record itself or its selection state changed, so re-renders driven
// by the counter or the filter reuse the previous string untouched.
type rowCache struct {
	rows map[int]rowEntry
}

type rowEntry struct {
	key  uint64
	line string
}

func newRowCache() *rowCache {
	return &rowCache{rows: make(map[int]rowEntry)}
}

func rowKey(u model.User, selected bool) uint64 {
	h := fnv.New64a()
	var b [8]byte
	v := uint64(u.ID)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
	h.Write(b[:])
	h.Write([]byte(u.Name))
	h.Write([]byte(u.Email))
	if selected {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// render returns the row for u, from cache when nothing it depends on
// changed since the last call.
func (rc *rowCache) render(u model.User, selected bool) string {
	key := rowKey(u, selected)
	if e, ok := rc.rows[u.ID]; ok && e.key == key {
		return e.line
	}
	line := renderRow(u, selected)
	rc.rows[u.ID] = rowEntry{key: key, line: line}
	return line
}

// clear drops every cached row; called when the collection is replaced.
func (rc *rowCache) clear() {
	rc.rows = make(map[int]rowEntry)
}

func renderRow(u model.User, selected bool) string {
	prefix := "  "
	name := u.Name
	if selected {
		prefix = selectedStyle.Render("> ")
		name = titleStyle.Render(name)
	}
	return fmt.Sprintf("%s%s %s %s",
		prefix,
		accentStyle.Render("•"),
		name,
		emailStyle.Render("<"+u.Email+">"),
	)
}
