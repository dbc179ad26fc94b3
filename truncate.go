package pdump

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ellipsis marks dropped elements and clipped output.
const ellipsis = "..."

// truncateItems caps an already-formatted item list to limit entries,
// appending the ellipsis marker when anything was dropped. A key/value
// pair counts as a single item.
func truncateItems(items []string, limit int) []string {
	if len(items) <= limit {
		return items
	}
	out := make([]string, 0, limit+1)
	out = append(out, items[:limit]...)
	return append(out, ellipsis)
}

// capLength enforces the overall output budget, on both display width
// and rune count: wide runes would bust a count-only budget, zero-width
// runes a width-only one. The ellipsis marker counts against the
// budget; when the budget cannot even hold the marker, the marker
// itself is clipped. limit 0 means no cap.
func capLength(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= limit && utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return ellipsis[:limit]
	}
	clipped := runewidth.Truncate(s, limit, ellipsis)
	if r := []rune(clipped); len(r) > limit {
		keep := runewidth.Truncate(string(r[:limit-len(ellipsis)]), limit-len(ellipsis), "")
		clipped = keep + ellipsis
	}
	return clipped
}
