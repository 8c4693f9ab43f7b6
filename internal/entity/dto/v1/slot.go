package dto

type Slot struct {
	SlotID     string `json:"slot_id" example:"SLOT_A1"`
	SlotName   string `json:"slot_name" example:"A1"`
	CameraID   string `json:"camera_id" example:"CAM_01"`
	IsOccupied bool   `json:"is_occupied" example:"false"`
	LastUpdate string `json:"last_update,omitempty" example:"2025-01-15T10:30:00"`
	SlotType   string `json:"slot_type" example:"standard"`
}

type SlotOccupancy struct {
	IsOccupied bool `json:"is_occupied"`
}

// SystemStatus is the backend's aggregate status document.
type SystemStatus struct {
	AnySlotAvailable  bool     `json:"any_slot_available"`
	TotalSlots        int      `json:"total_slots"`
	OccupiedSlots     int      `json:"occupied_slots"`
	FreeSlots         int      `json:"free_slots"`
	ActiveSessions    int      `json:"active_sessions"`
	CamerasOnline     []string `json:"cameras_online"`
	MQTTConnected     bool     `json:"mqtt_connected"`
	DatabaseConnected bool     `json:"database_connected"`
	LastUpdated       string   `json:"last_updated,omitempty"`
}
