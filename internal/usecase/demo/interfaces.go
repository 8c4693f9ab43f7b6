package demo

import (
	"context"

	"github.com/smart-parking/console/internal/entity/dto/v1"
)

type (
	// Backend is what the sequencer needs from the parking backend.
	Backend interface {
		GetUser(ctx context.Context, rfid string) (dto.User, error)
		ListSlots(ctx context.Context) ([]dto.Slot, error)
		SetSlotOccupied(ctx context.Context, slotID string, occupied bool) error
	}

	Broadcaster interface {
		BroadcastSlotUpdate(ctx context.Context, data interface{}) error
		BroadcastSessionUpdate(ctx context.Context, data interface{}) error
	}

	Feature interface {
		StartEntry(ctx context.Context) error
		StartExit(ctx context.Context) error
		Reset()
		Snapshot() dto.DemoSnapshot
	}
)
