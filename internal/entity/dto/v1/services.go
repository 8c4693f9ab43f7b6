package dto

import (
	"encoding/json"
	"time"
)

const StatusOffline = "offline"

// VisionStatus is returned in place of the vision service status when it cannot be reached.
type VisionStatus struct {
	Status        string   `json:"status"`
	Cameras       []string `json:"cameras"`
	SlotsDetected int      `json:"slots_detected"`
}

type CameraList struct {
	Cameras []json.RawMessage `json:"cameras"`
}

// AggregatorStatus is returned in place of the aggregator status when it cannot be reached.
type AggregatorStatus struct {
	Status           string `json:"status"`
	MQTTConnected    bool   `json:"mqtt_connected"`
	VisionConnected  bool   `json:"vision_connected"`
	BackendConnected bool   `json:"backend_connected"`
}

func OfflineVisionStatus() VisionStatus {
	return VisionStatus{Status: StatusOffline, Cameras: []string{}}
}

func OfflineCameraList() CameraList {
	return CameraList{Cameras: []json.RawMessage{}}
}

func OfflineAggregatorStatus() AggregatorStatus {
	return AggregatorStatus{Status: StatusOffline}
}

type ServiceHealth struct {
	Online    bool      `json:"online"`
	Detail    string    `json:"detail"`
	CheckedAt time.Time `json:"checkedAt"`
}

type SystemHealth struct {
	Backend    ServiceHealth `json:"backend"`
	Vision     ServiceHealth `json:"vision"`
	Aggregator ServiceHealth `json:"aggregator"`
}
