// Package demo runs the scripted entry/exit walkthrough used on the live demo
// screen. One Sequencer owns all demo state; runs execute their stages in
// order on a goroutine, pausing on an injectable clock between stages.
package demo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	PhaseIdle      = "idle"
	PhaseEntering  = "entering"
	PhaseParked    = "parked"
	PhaseExiting   = "exiting"
	PhaseCompleted = "completed"
	PhaseAborted   = "aborted"

	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"

	SessionStatusActive = "active"
	SessionStatusClosed = "closed"

	sessionIDPrefix = "DEMO_"
)

var (
	ErrRunInProgress   = errors.New("a demo run is already in progress")
	ErrSessionActive   = errors.New("a demo session is already active")
	ErrNoActiveSession = errors.New("no active demo session")

	// errAborted ends a run at the failing stage.
	errAborted = errors.New("demo run aborted")
	// errStale means a reset replaced the run mid-stage.
	errStale = errors.New("demo run superseded")
)

type step struct {
	name string
	run  func(ctx context.Context, r *run) error
}

// run is the scratch state one goroutine carries between its stages.
type run struct {
	gen     uint64
	kind    string
	user    dto.User
	slot    dto.Slot
	session dto.DemoSession
	elapsed time.Duration
	charge  float64
}

// Sequencer -.
type Sequencer struct {
	backend Backend
	bc      Broadcaster
	clock   clockwork.Clock
	log     logger.Interface
	cfg     config.Demo

	wg sync.WaitGroup

	mu         sync.Mutex
	gen        uint64
	cancel     context.CancelFunc
	running    bool
	phase      string
	step       int
	logs       []dto.LogEntry
	session    *dto.DemoSession
	timerOn    bool
	timerStart time.Time
	elapsed    time.Duration
	charge     float64
}

// Option -.
type Option func(*Sequencer)

// WithClock drives stage delays and timestamps from c.
func WithClock(c clockwork.Clock) Option {
	return func(s *Sequencer) {
		s.clock = c
	}
}

// WithBroadcaster publishes slot and session changes made by demo runs.
func WithBroadcaster(b Broadcaster) Option {
	return func(s *Sequencer) {
		s.bc = b
	}
}

// New -.
func New(backend Backend, cfg config.Demo, log logger.Interface, opts ...Option) *Sequencer {
	if cfg.PerHourRate <= 0 {
		cfg.PerHourRate = DefaultPerHourRate
	}

	if cfg.MinimumFare <= 0 {
		cfg.MinimumFare = DefaultMinimumFare
	}

	s := &Sequencer{
		backend: backend,
		clock:   clockwork.NewRealClock(),
		log:     log,
		cfg:     cfg,
		phase:   PhaseIdle,
		logs:    make([]dto.LogEntry, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StartEntry begins the entry walkthrough and returns once it is scheduled.
// The run outlives ctx's cancellation; only Reset stops it.
func (s *Sequencer) StartEntry(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunInProgress
	}

	if s.session != nil && s.session.Status == SessionStatusActive {
		return ErrSessionActive
	}

	s.clearLocked()
	s.phase = PhaseEntering
	s.launchLocked(ctx, runKindEntry, 0, s.entrySteps())

	return nil
}

// StartExit begins the exit walkthrough for the active session. Without one
// it returns ErrNoActiveSession and changes nothing.
func (s *Sequencer) StartExit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.Status != SessionStatusActive {
		return ErrNoActiveSession
	}

	if s.running {
		return ErrRunInProgress
	}

	s.phase = PhaseExiting
	s.launchLocked(ctx, runKindExit, len(EntryStages), s.exitSteps())

	return nil
}

// Reset drops all demo state. A running stage finishes its in-flight backend
// call but its result is discarded, and no further stage runs. Backend changes
// already made are kept.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.running = false
	s.clearLocked()
	s.phase = PhaseIdle
}

// Snapshot -.
func (s *Sequencer) Snapshot() dto.DemoSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := dto.DemoSnapshot{
		Phase:      s.phase,
		ActiveStep: s.step,
		Running:    s.running,
		Logs:       make([]dto.LogEntry, len(s.logs)),
		Charge:     s.charge,
	}

	copy(snap.Logs, s.logs)

	if s.phase != PhaseIdle {
		snap.StageName = StageName(s.step)
	}

	if s.session != nil {
		session := *s.session
		snap.Session = &session
	}

	elapsed := s.elapsed
	if s.timerOn {
		elapsed = max(s.clock.Since(s.timerStart), 0)
		snap.Charge = Charge(elapsed, s.cfg.PerHourRate, s.cfg.MinimumFare)
	}

	snap.DurationSeconds = int64(elapsed / time.Second)

	return snap
}

// Wait blocks until every run goroutine started so far has returned.
func (s *Sequencer) Wait() {
	s.wg.Wait()
}

// Close resets the sequencer and waits for its goroutines.
func (s *Sequencer) Close() {
	s.Reset()
	s.Wait()
}

func (s *Sequencer) clearLocked() {
	s.step = 0
	s.logs = make([]dto.LogEntry, 0)
	s.session = nil
	s.timerOn = false
	s.timerStart = time.Time{}
	s.elapsed = 0
	s.charge = 0
}

func (s *Sequencer) launchLocked(ctx context.Context, kind string, offset int, steps []step) {
	s.gen++

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.running = true

	r := &run{gen: s.gen, kind: kind}
	if s.session != nil {
		r.session = *s.session
	}

	s.wg.Add(1)

	go s.drive(runCtx, cancel, r, offset, steps)
}

func (s *Sequencer) drive(ctx context.Context, cancel context.CancelFunc, r *run, offset int, steps []step) {
	defer s.wg.Done()
	defer cancel()

	outcome := outcomeReset

	defer func() {
		demoRunsTotal.WithLabelValues(r.kind, outcome).Inc()
	}()

	for i, st := range steps {
		if !s.update(r.gen, func() { s.step = offset + i }) {
			return
		}

		if err := st.run(ctx, r); err != nil {
			if errors.Is(err, errAborted) && s.finish(r.gen, PhaseAborted) {
				s.log.Warn("usecase - demo - %s run aborted at %s", r.kind, st.name)

				outcome = outcomeAborted
			}

			return
		}

		if i == len(steps)-1 || s.cfg.StageDelay <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.cfg.StageDelay):
		}
	}

	final := PhaseParked
	if r.kind == runKindExit {
		final = PhaseCompleted
	}

	if s.finish(r.gen, final) {
		outcome = outcomeCompleted
	}
}

// update applies fn under the lock if gen is still the current run.
func (s *Sequencer) update(gen uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	fn()

	return true
}

func (s *Sequencer) finish(gen uint64, phase string) bool {
	return s.update(gen, func() {
		s.running = false
		s.cancel = nil
		s.phase = phase
	})
}

func (s *Sequencer) note(r *run, severity, message string) error {
	entry := dto.LogEntry{Timestamp: s.clock.Now(), Message: message, Severity: severity}

	if !s.update(r.gen, func() { s.logs = append(s.logs, entry) }) {
		return errStale
	}

	return nil
}

func (s *Sequencer) notes(r *run, entries ...[2]string) error {
	for _, e := range entries {
		if err := s.note(r, e[0], e[1]); err != nil {
			return err
		}
	}

	return nil
}

// fail records the single error entry of an aborted run.
func (s *Sequencer) fail(r *run, message string) error {
	if err := s.note(r, SeverityError, message); err != nil {
		return err
	}

	return errAborted
}

func (s *Sequencer) broadcastSlot(ctx context.Context, slot dto.Slot) {
	if s.bc == nil {
		return
	}

	if err := s.bc.BroadcastSlotUpdate(ctx, slot); err != nil {
		s.log.Warn("usecase - demo - BroadcastSlotUpdate: %v", err)
	}
}

func (s *Sequencer) broadcastSession(ctx context.Context, session dto.DemoSession) {
	if s.bc == nil {
		return
	}

	if err := s.bc.BroadcastSessionUpdate(ctx, session); err != nil {
		s.log.Warn("usecase - demo - BroadcastSessionUpdate: %v", err)
	}
}

func (s *Sequencer) entrySteps() []step {
	return []step{
		{StageVehicleApproach, func(_ context.Context, r *run) error {
			return s.note(r, SeverityInfo, "Vehicle detected at entry gate")
		}},
		{StageRFIDScan, func(_ context.Context, r *run) error {
			return s.notes(r,
				[2]string{SeverityInfo, "Scanning RFID tag..."},
				[2]string{SeveritySuccess, "RFID detected: " + s.cfg.RFID},
			)
		}},
		{StagePlateScan, func(_ context.Context, r *run) error {
			return s.notes(r,
				[2]string{SeverityInfo, "Capturing license plate..."},
				[2]string{SeveritySuccess, "License plate detected: " + s.cfg.Plate},
			)
		}},
		{StageUserAuthentication, s.authenticate},
		{StageSlotSearch, s.searchSlot},
		{StageSlotReservation, s.reserveSlot},
		{StageSessionCreation, s.createSession},
		{StageGateOpen, func(_ context.Context, r *run) error {
			return s.notes(r,
				[2]string{SeverityInfo, "Opening entry gate..."},
				[2]string{SeveritySuccess, "Gate opened - Welcome!"},
			)
		}},
		{StageTimerStart, func(_ context.Context, r *run) error {
			if !s.update(r.gen, func() {
				s.timerOn = true
				s.timerStart = r.session.EntryTime
			}) {
				return errStale
			}

			return s.note(r, SeverityInfo, "Parking timer started")
		}},
	}
}

func (s *Sequencer) authenticate(ctx context.Context, r *run) error {
	if err := s.note(r, SeverityInfo, "Verifying user credentials..."); err != nil {
		return err
	}

	user, err := s.backend.GetUser(context.WithoutCancel(ctx), s.cfg.RFID)
	if err != nil {
		s.log.Warn("usecase - demo - GetUser: %v", err)

		return s.fail(r, "Authentication failed")
	}

	r.user = user

	return s.notes(r,
		[2]string{SeveritySuccess, "User authenticated: " + user.UserName},
		[2]string{SeverityInfo, fmt.Sprintf("Wallet balance: %.2f", user.WalletBalance)},
	)
}

func (s *Sequencer) searchSlot(ctx context.Context, r *run) error {
	if err := s.note(r, SeverityInfo, "Finding available parking slot..."); err != nil {
		return err
	}

	slots, err := s.backend.ListSlots(context.WithoutCancel(ctx))
	if err != nil {
		s.log.Warn("usecase - demo - ListSlots: %v", err)

		return s.fail(r, "Failed to fetch parking slots")
	}

	for _, slot := range slots {
		if slot.IsOccupied {
			continue
		}

		r.slot = slot

		name := slot.SlotName
		if name == "" {
			name = slot.SlotID
		}

		return s.notes(r,
			[2]string{SeveritySuccess, "Slot assigned: " + name},
			[2]string{SeverityInfo, "Location: Zone " + slot.CameraID},
		)
	}

	return s.fail(r, "No parking slots available")
}

func (s *Sequencer) reserveSlot(ctx context.Context, r *run) error {
	if err := s.backend.SetSlotOccupied(context.WithoutCancel(ctx), r.slot.SlotID, true); err != nil {
		s.log.Warn("usecase - demo - SetSlotOccupied: %v", err)

		return s.fail(r, "Slot reservation failed")
	}

	if err := s.note(r, SeverityInfo, "Slot marked as occupied"); err != nil {
		return err
	}

	r.slot.IsOccupied = true
	s.broadcastSlot(ctx, r.slot)

	return nil
}

func (s *Sequencer) createSession(ctx context.Context, r *run) error {
	if err := s.note(r, SeverityInfo, "Creating parking session..."); err != nil {
		return err
	}

	vehicle := r.user.VehicleNo
	if vehicle == "" {
		vehicle = s.cfg.Plate
	}

	r.session = dto.DemoSession{
		SessionID: sessionIDPrefix + uuid.NewString(),
		RFID:      s.cfg.RFID,
		UserName:  r.user.UserName,
		VehicleNo: vehicle,
		SlotID:    r.slot.SlotID,
		EntryTime: s.clock.Now(),
		Status:    SessionStatusActive,
	}

	session := r.session
	if !s.update(r.gen, func() { s.session = &session }) {
		return errStale
	}

	if err := s.note(r, SeveritySuccess, "Parking session started"); err != nil {
		return err
	}

	s.broadcastSession(ctx, r.session)

	return nil
}

func (s *Sequencer) exitSteps() []step {
	return []step{
		{StageExitApproach, func(_ context.Context, r *run) error {
			return s.note(r, SeverityInfo, "Vehicle detected at exit gate")
		}},
		{StageRFIDVerify, func(_ context.Context, r *run) error {
			if err := s.note(r, SeverityInfo, "Scanning RFID tag..."); err != nil {
				return err
			}

			if r.session.RFID != s.cfg.RFID {
				return s.fail(r, "RFID mismatch: "+s.cfg.RFID)
			}

			return s.note(r, SeveritySuccess, "RFID verified: "+r.session.RFID)
		}},
		{StageDurationCalculation, func(_ context.Context, r *run) error {
			if err := s.note(r, SeverityInfo, "Calculating parking duration..."); err != nil {
				return err
			}

			r.elapsed = max(s.clock.Since(r.session.EntryTime), 0)

			return s.note(r, SeverityInfo, "Duration: "+formatDuration(r.elapsed))
		}},
		{StageChargeCalculation, func(_ context.Context, r *run) error {
			if err := s.note(r, SeverityInfo, "Calculating charges..."); err != nil {
				return err
			}

			r.charge = Charge(r.elapsed, s.cfg.PerHourRate, s.cfg.MinimumFare)

			return s.note(r, SeverityInfo, fmt.Sprintf("Total charge: %.2f", r.charge))
		}},
		{StagePayment, func(_ context.Context, r *run) error {
			return s.notes(r,
				[2]string{SeverityInfo, "Processing payment from wallet..."},
				[2]string{SeveritySuccess, "Payment successful!"},
			)
		}},
		{StageSlotRelease, s.releaseSlot},
		{StageExitGateOpen, s.closeSession},
	}
}

func (s *Sequencer) releaseSlot(ctx context.Context, r *run) error {
	if err := s.note(r, SeverityInfo, "Freeing parking slot..."); err != nil {
		return err
	}

	if err := s.backend.SetSlotOccupied(context.WithoutCancel(ctx), r.session.SlotID, false); err != nil {
		s.log.Warn("usecase - demo - SetSlotOccupied: %v", err)

		return s.fail(r, "Slot release failed")
	}

	if err := s.note(r, SeveritySuccess, "Slot freed"); err != nil {
		return err
	}

	s.broadcastSlot(ctx, dto.Slot{SlotID: r.session.SlotID, IsOccupied: false})

	return nil
}

func (s *Sequencer) closeSession(ctx context.Context, r *run) error {
	if err := s.note(r, SeverityInfo, "Opening exit gate..."); err != nil {
		return err
	}

	r.session.Status = SessionStatusClosed

	session := r.session
	if !s.update(r.gen, func() {
		s.session = &session
		s.timerOn = false
		s.elapsed = r.elapsed
		s.charge = r.charge
	}) {
		return errStale
	}

	if err := s.note(r, SeveritySuccess, "Thank you! Safe journey!"); err != nil {
		return err
	}

	s.broadcastSession(ctx, r.session)

	return nil
}

func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)

	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}
