// Package aggregate provides the lifecycle bookkeeping shared by the catalog
// aggregates: timestamps, the active flag and pending domain events.
package aggregate

import "time"

// Now returns the current UTC time truncated to microseconds, the precision
// the database keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Advance returns a timestamp that is not before prev.
func Advance(prev time.Time) time.Time {
	now := Now()
	if now.Before(prev) {
		return prev
	}
	return now
}

// Lifecycle tracks the active flag and timestamps of a soft-deletable
// aggregate. deletedAt is set if and only if the aggregate is inactive.
type Lifecycle struct {
	active    bool
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewLifecycle starts a lifecycle at the current time.
func NewLifecycle(active bool) Lifecycle {
	now := Now()
	l := Lifecycle{
		active:    active,
		createdAt: now,
		updatedAt: now,
	}
	if !active {
		deletedAt := now
		l.deletedAt = &deletedAt
	}
	return l
}

// RestoreLifecycle rebuilds a lifecycle from stored values.
func RestoreLifecycle(active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) Lifecycle {
	return Lifecycle{
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: copyTime(deletedAt),
	}
}

// IsActive reports whether the aggregate is active.
func (l Lifecycle) IsActive() bool {
	return l.active
}

// CreatedAt returns the creation time.
func (l Lifecycle) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (l Lifecycle) UpdatedAt() time.Time {
	return l.updatedAt
}

// DeletedAt returns a copy of the deactivation time, nil while active.
func (l Lifecycle) DeletedAt() *time.Time {
	return copyTime(l.deletedAt)
}

// Activate marks the aggregate active and clears the deactivation time.
func (l *Lifecycle) Activate() {
	l.active = true
	l.deletedAt = nil
	l.Touch()
}

// Deactivate marks the aggregate inactive. The first deactivation time is
// kept across repeated calls.
func (l *Lifecycle) Deactivate() {
	if l.deletedAt == nil {
		now := Advance(l.updatedAt)
		l.deletedAt = &now
	}
	l.active = false
	l.Touch()
}

// SetActive activates or deactivates.
func (l *Lifecycle) SetActive(active bool) {
	if active {
		l.Activate()
		return
	}
	l.Deactivate()
}

// Touch advances updatedAt.
func (l *Lifecycle) Touch() {
	l.updatedAt = Advance(l.updatedAt)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// CopyString returns a copy of the pointed-to string, nil for nil.
func CopyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Deref returns the pointed-to string, empty for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
