// Package identifier holds helpers shared by the aggregate identifier types.
package identifier

import (
	"strings"

	"github.com/google/uuid"
)

// ID is satisfied by every aggregate identifier type. Each aggregate declares
// its own named string type so identifiers of different kinds cannot be mixed.
type ID interface {
	~string
}

// New generates a lowercase UUID string.
func New() string {
	return strings.ToLower(uuid.NewString())
}

// Unique returns ids without duplicates, keeping the first occurrence of each.
// Empty identifiers are dropped.
func Unique[T ID](ids []T) []T {
	if len(ids) == 0 {
		return []T{}
	}
	seen := make(map[T]struct{}, len(ids))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Contains reports whether id is in ids.
func Contains[T ID](ids []T, id T) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// Difference returns the members of requested that are not in existing,
// in the order they appear in requested.
func Difference[T ID](requested, existing []T) []T {
	present := make(map[T]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}
	missing := make([]T, 0)
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Join renders ids separated by sep.
func Join[T ID](ids []T, sep string) string {
	return strings.Join(Strings(ids), sep)
}

// Strings converts typed identifiers to plain strings.
func Strings[T ID](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// From converts plain strings to typed identifiers.
func From[T ID](values []string) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
