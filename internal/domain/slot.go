package domain

// SlotStatus represents the approval status of a visit slot
type SlotStatus string

const (
	StatusRequested SlotStatus = "requested"
	StatusApproved  SlotStatus = "approved"
	StatusRejected  SlotStatus = "rejected"
	StatusRemoved   SlotStatus = "removed"
)

// Slot represents one bookable visit interval for a flat
type Slot struct {
	FlatID    int64
	VisitorID int64
	StartTime int64 // epoch seconds, aligned to SlotDurationSeconds
	Status    SlotStatus
}

// SlotKey identifies the booking uniqueness of a slot.
// At most one live (non-removed) slot exists per key at any time.
type SlotKey struct {
	FlatID    int64
	StartTime int64
}

// Key returns the SlotKey of the slot
func (s *Slot) Key() SlotKey {
	return SlotKey{FlatID: s.FlatID, StartTime: s.StartTime}
}

// IsLive returns true if the slot has not been removed
func (s *Slot) IsLive() bool {
	return s.Status != StatusRemoved
}

// IsDecided returns true if the slot has been approved or rejected
func (s *Slot) IsDecided() bool {
	return s.Status == StatusApproved || s.Status == StatusRejected
}

// CanBeCancelled returns true if the slot can be cancelled by its visitor
func (s *Slot) CanBeCancelled() bool {
	return s.Status == StatusRequested || s.Status == StatusApproved
}
