package entity

const (
	TransactionTypeTopup     = "topup"
	TransactionTypeDeduction = "deduction"
	TransactionTypeRefund    = "refund"
)

// Transaction is one wallet movement.
type Transaction struct {
	TransactionID   string
	RFIDID          string
	Amount          float64
	TransactionType string
	BalanceBefore   float64
	BalanceAfter    float64
	SessionID       string
	PaymentMethod   string
	Status          string
	Timestamp       int64
}

// RevenueDay is the completed-session revenue for one calendar day.
type RevenueDay struct {
	Day      string
	Revenue  float64
	Sessions int
}
