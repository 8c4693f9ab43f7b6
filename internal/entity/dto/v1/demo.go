package dto

import "time"

type DemoSession struct {
	SessionID string    `json:"sessionId" example:"DEMO_2b1f0c7e-6f43-4c77-a1b0-0d3c5e9f8a21"`
	RFID      string    `json:"rfid" example:"RFID001"`
	UserName  string    `json:"userName" example:"John Doe"`
	VehicleNo string    `json:"vehicleNo" example:"MH-12-AB-1234"`
	SlotID    string    `json:"slotId" example:"SLOT_A1"`
	EntryTime time.Time `json:"entryTime"`
	Status    string    `json:"status" example:"active"`
}

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity" example:"info"`
}

type DemoSnapshot struct {
	Phase           string       `json:"phase" example:"parked"`
	ActiveStep      int          `json:"activeStep" example:"8"`
	StageName       string       `json:"stageName" example:"timer-start"`
	Running         bool         `json:"running"`
	Session         *DemoSession `json:"session"`
	Logs            []LogEntry   `json:"logs"`
	DurationSeconds int64        `json:"durationSeconds"`
	Charge          float64      `json:"charge"`
}
