package monitor

import (
	"context"

	"github.com/smart-parking/console/internal/entity/dto/v1"
)

type (
	// Prober reports the status string a service publishes about itself.
	Prober interface {
		Probe(ctx context.Context) (string, error)
	}

	Backend interface {
		Prober
		ListSlots(ctx context.Context) ([]dto.Slot, error)
	}

	Broadcaster interface {
		BroadcastSlotUpdate(ctx context.Context, data interface{}) error
	}

	Feature interface {
		Snapshot() dto.SystemHealth
	}
)
