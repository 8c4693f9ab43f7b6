package entity

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session is one vehicle's stay from entry to exit. Times are unix seconds;
// ExitTime is nil while the session is active.
type Session struct {
	SessionID     string
	RFIDID        string
	VehicleNo     string
	SlotID        string
	EntryTime     int64
	ExitTime      *int64
	AmountCharged float64
	Status        string
}
