package domain

import "time"

// StatusHistoryEntry is one row of the append-only status transition
// ledger. Entries are immutable once written and only disappear when the
// owning application is deleted. FromStatus is nil exactly for the entry
// recorded at application creation.
type StatusHistoryEntry struct {
	ID            int64
	ApplicationID int64
	UserID        int64 // acting user
	FromStatus    *Status
	ToStatus      Status
	ChangedAt     time.Time
}
