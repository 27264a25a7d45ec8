package scanner

import (
	"strings"

	"github.com/mdemirtas/iamwatch/pkg/types"
)

// IsActionWildcard reports whether the statement allows Action "*" on a
// wildcard resource with no condition narrowing it down.
func IsActionWildcard(stmt types.Statement) bool {
	if stmt.Effect != "Allow" {
		return false
	}

	if !containsWildcard(stmt.Action) {
		return false
	}

	if stmt.HasCondition() {
		return false
	}

	for _, r := range stmt.Resources() {
		if r == "*" || strings.Contains(r, ":*") {
			return true
		}
	}

	return false
}

// IsManyActions reports whether the statement enumerates at least threshold
// distinct actions. Statements carrying the bare "*" are excluded here, those
// belong to IsActionWildcard.
func IsManyActions(stmt types.Statement, threshold int) bool {
	if stmt.Effect != "Allow" {
		return false
	}

	unique := DistinctActions(stmt)
	if containsWildcard(unique) {
		return false
	}

	return len(unique) >= threshold
}

// DistinctActions returns the statement's action set with duplicates removed,
// keeping first-seen order.
func DistinctActions(stmt types.Statement) []string {
	seen := make(map[string]struct{}, len(stmt.Action))
	var unique []string
	for _, a := range stmt.Action {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}
	return unique
}

func containsWildcard(actions []string) bool {
	for _, a := range actions {
		if a == "*" {
			return true
		}
	}
	return false
}
