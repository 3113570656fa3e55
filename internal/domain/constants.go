package domain

// Visit slot timing constants (seconds)
const (
	// SlotDurationSeconds duration of one visit slot
	SlotDurationSeconds = 20 * 60

	// FirstSlotTime earliest slot start, seconds since local midnight (10:00)
	FirstSlotTime = 10 * 60 * 60

	// LastSlotTime latest slot start, seconds since local midnight (20:00 minus one slot)
	LastSlotTime = 20*60*60 - SlotDurationSeconds

	// MinNoticeSeconds minimum gap between "now" and a slot start (24 hours)
	MinNoticeSeconds = 24 * 60 * 60
)

// Preformatted values for client-facing error messages
const (
	SlotDurationString  = "20 minutes"
	FirstSlotTimeString = "10:00"
	LastSlotTimeString  = "19:40"
	MinNoticeString     = "24 hours"
)

// Visit event types recorded on successful transitions
const (
	EventVisitRequested = "visit_requested"
	EventVisitApproved  = "visit_approved"
	EventVisitRejected  = "visit_rejected"
	EventVisitCanceled  = "visit_canceled"
)
