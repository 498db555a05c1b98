package util

import (
	"strings"

	"github.com/samber/lo"
)

// OrDash returns the string if non-empty, otherwise returns "-".
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// JoinOrDash joins the non-empty items with ", ". It returns "-" when nothing
// is left to join.
func JoinOrDash(items ...string) string {
	kept := lo.Compact(items)
	if len(kept) == 0 {
		return "-"
	}
	return strings.Join(kept, ", ")
}
