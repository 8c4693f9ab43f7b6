package dto

type SlotCounts struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
	Free     int `json:"free"`
}

type SessionCounts struct {
	Active int `json:"active"`
}

type RevenueToday struct {
	Today float64 `json:"today"`
}

type UserCounts struct {
	Total int `json:"total"`
}

type DashboardStats struct {
	Slots    SlotCounts    `json:"slots"`
	Sessions SessionCounts `json:"sessions"`
	Revenue  RevenueToday  `json:"revenue"`
	Users    UserCounts    `json:"users"`
}

type Transaction struct {
	TransactionID   string  `json:"transaction_id" example:"TXN_20250115_001"`
	RFIDID          string  `json:"rfid_id" example:"RFID001"`
	Amount          float64 `json:"amount" example:"100"`
	TransactionType string  `json:"transaction_type" example:"topup"`
	BalanceBefore   float64 `json:"balance_before" example:"500"`
	BalanceAfter    float64 `json:"balance_after" example:"600"`
	SessionID       string  `json:"session_id,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty" example:"upi"`
	Status          string  `json:"status" example:"completed"`
	Timestamp       string  `json:"timestamp" example:"2025-01-15T10:30:00Z"`
}

// RevenueDay keeps the "_id" key dashboards already chart against.
type RevenueDay struct {
	ID       string  `json:"_id" example:"2025-01-15"`
	Revenue  float64 `json:"revenue" example:"240"`
	Sessions int     `json:"sessions" example:"12"`
}
