// Package derive holds the pure transforms computed from the fetched
// collection. Nothing here keeps state of its own; results are a function
// of the inputs only (Memo caches, it never owns).
package derive

import (
	"strings"
	"unicode/utf8"

	"userdash/internal/model"
)

// FilterByName returns the users whose name contains query,
// case-insensitively. Relative order is preserved. An empty query returns
// the input slice as-is.
func FilterByName(users []model.User, query string) []model.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out
}

// TotalNameLength sums the rune lengths of every name in users.
func TotalNameLength(users []model.User) int {
	total := 0
	for _, u := range users {
		total += utf8.RuneCountInString(u.Name)
	}
	return total
}
