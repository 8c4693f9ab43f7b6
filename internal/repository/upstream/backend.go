package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/pkg/logger"
)

// Backend talks to the parking backend API.
type Backend struct {
	c *client
}

// NewBackend -.
func NewBackend(baseURL string, timeout time.Duration, l logger.Interface) (*Backend, error) {
	c, err := newClient(ServiceBackend, baseURL, timeout, l)
	if err != nil {
		return nil, err
	}

	return &Backend{c: c}, nil
}

// Forward sends the request unchanged and returns the buffered answer.
func (b *Backend) Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*Response, error) {
	return b.c.fetch(ctx, method, path, query, body)
}

// Status -.
func (b *Backend) Status(ctx context.Context) (dto.SystemStatus, error) {
	var status dto.SystemStatus

	err := b.c.getJSON(ctx, "/api/status", &status)

	return status, err
}

// ActiveSessionCount returns the length of the active session list.
func (b *Backend) ActiveSessionCount(ctx context.Context) (int, error) {
	var sessions []json.RawMessage

	if err := b.c.getJSON(ctx, "/api/sessions/active", &sessions); err != nil {
		return 0, err
	}

	return len(sessions), nil
}

// ListSlots -.
func (b *Backend) ListSlots(ctx context.Context) ([]dto.Slot, error) {
	var slots []dto.Slot

	if err := b.c.getJSON(ctx, "/api/slots", &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

// SetSlotOccupied flips one slot's occupancy. It is sent once; callers decide
// what a failure means.
func (b *Backend) SetSlotOccupied(ctx context.Context, slotID string, occupied bool) error {
	body, err := json.Marshal(dto.SlotOccupancy{IsOccupied: occupied})
	if err != nil {
		return err
	}

	_, err = b.c.fetch(ctx, http.MethodPatch, "/api/slots/"+url.PathEscape(slotID), nil, body)

	return err
}

// GetUser looks a card holder up by RFID tag.
func (b *Backend) GetUser(ctx context.Context, rfid string) (dto.User, error) {
	var user dto.User

	if err := b.c.getJSON(ctx, "/api/users/"+url.PathEscape(rfid), &user); err != nil {
		return dto.User{}, err
	}

	if user.RFIDID == "" {
		return dto.User{}, fmt.Errorf("upstream - backend - GetUser: empty user for %s", rfid)
	}

	return user, nil
}

// Probe returns the status the backend reports on /health.
func (b *Backend) Probe(ctx context.Context) (string, error) {
	return b.c.probe(ctx, "/health")
}
