package render

import (
	"fmt"
	"strings"

	"github.com/mazzegi/minical/calendar"
	"github.com/r3labs/diff/v3"
)

// Changes returns the changelog from old to new. Cells are compared by position.
func Changes(old, new calendar.View) (diff.Changelog, error) {
	cl, err := diff.Diff(old, new, diff.SliceOrdering(true))
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return cl, nil
}

// FormatChanges renders one line per change, e.g. "update header: 2024年八月 -> 2024年四月".
func FormatChanges(cl diff.Changelog) string {
	var sb strings.Builder
	for _, c := range cl {
		fmt.Fprintf(&sb, "%s %s: %v -> %v\n", c.Type, strings.Join(c.Path, "."), c.From, c.To)
	}
	return sb.String()
}
