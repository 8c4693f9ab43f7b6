package demo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	gomock "go.uber.org/mock/gomock"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/mocks"
	"github.com/smart-parking/console/internal/usecase/demo"
	"github.com/smart-parking/console/pkg/logger"
)

const stageDelay = 1500 * time.Millisecond

var t0 = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var demoConfig = config.Demo{
	StageDelay:  stageDelay,
	PerHourRate: 20,
	MinimumFare: 10,
	RFID:        "RFID001",
	Plate:       "MH-12-AB-1234",
}

var (
	john  = dto.User{RFIDID: "RFID001", UserName: "John Doe", VehicleNo: "MH-12-AB-1234", WalletBalance: 500}
	slots = []dto.Slot{
		{SlotID: "SLOT_A1", SlotName: "A1", CameraID: "CAM_01", IsOccupied: true},
		{SlotID: "SLOT_A2", SlotName: "A2", CameraID: "CAM_01", IsOccupied: false},
		{SlotID: "SLOT_B1", SlotName: "B1", CameraID: "CAM_02", IsOccupied: false},
	}
)

func initSequencer(t *testing.T) (*demo.Sequencer, *mocks.MockDemoBackend, *clockwork.FakeClock) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	backend := mocks.NewMockDemoBackend(mockCtl)
	fc := clockwork.NewFakeClockAt(t0)

	seq := demo.New(backend, demoConfig, logger.New("error"), demo.WithClock(fc))
	t.Cleanup(seq.Close)

	return seq, backend, fc
}

// runToEnd advances the fake clock through every stage delay until the
// current run stops.
func runToEnd(t *testing.T, fc *clockwork.FakeClock, seq *demo.Sequencer) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)

	for seq.Snapshot().Running {
		require.True(t, time.Now().Before(deadline), "run did not finish")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		if fc.BlockUntilContext(ctx, 1) == nil {
			fc.Advance(stageDelay)
		}

		cancel()
	}

	seq.Wait()
}

// advanceStages lets the run pass n stage delays and then waits for it to
// park on the next one.
func advanceStages(t *testing.T, fc *clockwork.FakeClock, n int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < n; i++ {
		require.NoError(t, fc.BlockUntilContext(ctx, 1))
		fc.Advance(stageDelay)
	}

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
}

func expectHappyEntry(backend *mocks.MockDemoBackend) {
	backend.EXPECT().GetUser(gomock.Any(), "RFID001").Return(john, nil)
	backend.EXPECT().ListSlots(gomock.Any()).Return(slots, nil)
	backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", true).Return(nil).Times(1)
}

func countSeverity(logs []dto.LogEntry, severity string) int {
	n := 0

	for _, l := range logs {
		if l.Severity == severity {
			n++
		}
	}

	return n
}

func TestEntry_CompletesWithOneReservation(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	expectHappyEntry(backend)

	require.NoError(t, seq.StartEntry(context.Background()))
	assert.Equal(t, demo.PhaseEntering, seq.Snapshot().Phase)

	runToEnd(t, fc, seq)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseParked, snap.Phase)
	assert.False(t, snap.Running)
	assert.Equal(t, len(demo.EntryStages)-1, snap.ActiveStep)
	assert.Equal(t, demo.StageTimerStart, snap.StageName)
	assert.Zero(t, countSeverity(snap.Logs, demo.SeverityError))

	require.NotNil(t, snap.Session)
	assert.Equal(t, "SLOT_A2", snap.Session.SlotID)
	assert.Equal(t, "John Doe", snap.Session.UserName)
	assert.Equal(t, "RFID001", snap.Session.RFID)
	assert.Equal(t, demo.SessionStatusActive, snap.Session.Status)
	assert.Contains(t, snap.Session.SessionID, "DEMO_")

	// session-creation is stage 6, so six delays have passed when it runs
	assert.Equal(t, t0.Add(6*stageDelay), snap.Session.EntryTime)
	assert.NotEqual(t, t0, snap.Session.EntryTime)
}

func TestEntry_NoFreeSlot(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)

	full := []dto.Slot{
		{SlotID: "SLOT_A1", IsOccupied: true},
		{SlotID: "SLOT_A2", IsOccupied: true},
	}

	backend.EXPECT().GetUser(gomock.Any(), "RFID001").Return(john, nil)
	backend.EXPECT().ListSlots(gomock.Any()).Return(full, nil)
	backend.EXPECT().SetSlotOccupied(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseAborted, snap.Phase)
	assert.Equal(t, demo.StageSlotSearch, snap.StageName)
	assert.Nil(t, snap.Session)
	assert.Equal(t, 1, countSeverity(snap.Logs, demo.SeverityError))
	assert.Equal(t, "No parking slots available", snap.Logs[len(snap.Logs)-1].Message)
}

func TestEntry_AuthenticationFailure(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	backend.EXPECT().GetUser(gomock.Any(), "RFID001").Return(dto.User{}, errors.New("User not found"))

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseAborted, snap.Phase)
	assert.Equal(t, demo.StageUserAuthentication, snap.StageName)
	assert.Nil(t, snap.Session)
	assert.Equal(t, 1, countSeverity(snap.Logs, demo.SeverityError))
	assert.Equal(t, "Authentication failed", snap.Logs[len(snap.Logs)-1].Message)
}

func TestEntry_ReservationFailure(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	backend.EXPECT().GetUser(gomock.Any(), "RFID001").Return(john, nil)
	backend.EXPECT().ListSlots(gomock.Any()).Return(slots, nil)
	backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", true).Return(errors.New("timeout")).Times(1)

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseAborted, snap.Phase)
	assert.Nil(t, snap.Session)
	assert.Equal(t, 1, countSeverity(snap.Logs, demo.SeverityError))
}

func TestStartEntry_RejectsConcurrentRuns(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	expectHappyEntry(backend)

	require.NoError(t, seq.StartEntry(context.Background()))
	assert.ErrorIs(t, seq.StartEntry(context.Background()), demo.ErrRunInProgress)

	runToEnd(t, fc, seq)

	// the car is still parked
	assert.ErrorIs(t, seq.StartEntry(context.Background()), demo.ErrSessionActive)
}

func TestStartExit_NoSessionIsNoop(t *testing.T) {
	t.Parallel()

	seq, _, _ := initSequencer(t)

	assert.ErrorIs(t, seq.StartExit(context.Background()), demo.ErrNoActiveSession)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseIdle, snap.Phase)
	assert.Empty(t, snap.Logs)
	assert.False(t, snap.Running)
}

func TestExit_CompletesAndCharges(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	expectHappyEntry(backend)

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)

	entryLogs := len(seq.Snapshot().Logs)

	fc.Advance(61 * time.Minute)

	parked := seq.Snapshot()
	assert.InDelta(t, 40.0, parked.Charge, 0)
	assert.GreaterOrEqual(t, parked.DurationSeconds, int64(61*60))

	backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", false).Return(nil).Times(1)

	require.NoError(t, seq.StartExit(context.Background()))
	assert.Equal(t, demo.PhaseExiting, seq.Snapshot().Phase)
	assert.ErrorIs(t, seq.StartExit(context.Background()), demo.ErrRunInProgress)

	runToEnd(t, fc, seq)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseCompleted, snap.Phase)
	assert.Equal(t, len(demo.EntryStages)+len(demo.ExitStages)-1, snap.ActiveStep)
	require.NotNil(t, snap.Session)
	assert.Equal(t, demo.SessionStatusClosed, snap.Session.Status)
	assert.InDelta(t, 40.0, snap.Charge, 0)
	assert.Greater(t, len(snap.Logs), entryLogs)
	assert.Zero(t, countSeverity(snap.Logs, demo.SeverityError))

	// the timer is stopped: more time does not change the result
	duration := snap.DurationSeconds
	fc.Advance(3 * time.Hour)
	assert.Equal(t, duration, seq.Snapshot().DurationSeconds)
	assert.InDelta(t, 40.0, seq.Snapshot().Charge, 0)

	// and a closed session cannot be exited again
	assert.ErrorIs(t, seq.StartExit(context.Background()), demo.ErrNoActiveSession)
}

func TestExit_ReleaseFailureKeepsSession(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	expectHappyEntry(backend)

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)

	backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", false).Return(errors.New("backend down")).Times(1)

	require.NoError(t, seq.StartExit(context.Background()))
	runToEnd(t, fc, seq)

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseAborted, snap.Phase)
	assert.Equal(t, demo.StageSlotRelease, snap.StageName)
	require.NotNil(t, snap.Session)
	assert.Equal(t, demo.SessionStatusActive, snap.Session.Status)
	assert.Equal(t, 1, countSeverity(snap.Logs, demo.SeverityError))
}

func TestReset_MidSequence(t *testing.T) {
	t.Parallel()

	for k := 0; k < len(demo.EntryStages)-1; k++ {
		t.Run(demo.StageName(k), func(t *testing.T) {
			t.Parallel()

			seq, backend, fc := initSequencer(t)
			backend.EXPECT().GetUser(gomock.Any(), "RFID001").Return(john, nil).MaxTimes(1)
			backend.EXPECT().ListSlots(gomock.Any()).Return(slots, nil).MaxTimes(1)
			backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", true).Return(nil).MaxTimes(1)

			require.NoError(t, seq.StartEntry(context.Background()))
			advanceStages(t, fc, k)
			require.Equal(t, k, seq.Snapshot().ActiveStep)

			seq.Reset()
			seq.Wait()

			snap := seq.Snapshot()
			assert.Equal(t, demo.PhaseIdle, snap.Phase)
			assert.Zero(t, snap.ActiveStep)
			assert.Empty(t, snap.StageName)
			assert.Nil(t, snap.Session)
			assert.Empty(t, snap.Logs)
			assert.False(t, snap.Running)
			assert.Zero(t, snap.DurationSeconds)
			assert.Zero(t, snap.Charge)
		})
	}
}

func TestReset_MidExit(t *testing.T) {
	t.Parallel()

	first := len(demo.EntryStages)
	last := first + len(demo.ExitStages) - 1

	for k := first; k < last; k++ {
		t.Run(demo.StageName(k), func(t *testing.T) {
			t.Parallel()

			seq, backend, fc := initSequencer(t)
			expectHappyEntry(backend)
			backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", false).Return(nil).MaxTimes(1)

			require.NoError(t, seq.StartEntry(context.Background()))
			runToEnd(t, fc, seq)
			require.NotNil(t, seq.Snapshot().Session)

			require.NoError(t, seq.StartExit(context.Background()))
			advanceStages(t, fc, k-first)
			require.Equal(t, k, seq.Snapshot().ActiveStep)
			require.Equal(t, demo.PhaseExiting, seq.Snapshot().Phase)

			seq.Reset()
			seq.Wait()

			snap := seq.Snapshot()
			assert.Equal(t, demo.PhaseIdle, snap.Phase)
			assert.Zero(t, snap.ActiveStep)
			assert.Nil(t, snap.Session)
			assert.Empty(t, snap.Logs)
			assert.False(t, snap.Running)
			assert.Zero(t, snap.DurationSeconds)
			assert.Zero(t, snap.Charge)

			// a fresh exit has nothing to act on
			assert.ErrorIs(t, seq.StartExit(context.Background()), demo.ErrNoActiveSession)
		})
	}
}

func TestReset_DiscardsInFlightResult(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)

	called := make(chan struct{})
	release := make(chan struct{})

	backend.EXPECT().GetUser(gomock.Any(), "RFID001").DoAndReturn(func(ctx context.Context, _ string) (dto.User, error) {
		close(called)
		<-release

		// the call is not interrupted by the reset
		assert.NoError(t, ctx.Err())

		return john, nil
	})
	// nothing after the interrupted stage may run
	backend.EXPECT().ListSlots(gomock.Any()).Times(0)

	require.NoError(t, seq.StartEntry(context.Background()))
	advanceStages(t, fc, 2)
	fc.Advance(stageDelay)
	<-called

	seq.Reset()
	close(release)
	seq.Wait()

	snap := seq.Snapshot()
	assert.Equal(t, demo.PhaseIdle, snap.Phase)
	assert.Empty(t, snap.Logs)
	assert.Nil(t, snap.Session)
}

func TestReset_WhileParkedStopsTimer(t *testing.T) {
	t.Parallel()

	seq, backend, fc := initSequencer(t)
	expectHappyEntry(backend)

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)

	fc.Advance(10 * time.Minute)
	require.Positive(t, seq.Snapshot().DurationSeconds)

	seq.Reset()
	fc.Advance(10 * time.Minute)

	snap := seq.Snapshot()
	assert.Zero(t, snap.DurationSeconds)
	assert.Nil(t, snap.Session)
	assert.ErrorIs(t, seq.StartExit(context.Background()), demo.ErrNoActiveSession)
}

func TestBroadcasts(t *testing.T) {
	t.Parallel()

	mockCtl := gomock.NewController(t)
	backend := mocks.NewMockDemoBackend(mockCtl)
	bc := mocks.NewMockDemoBroadcaster(mockCtl)
	fc := clockwork.NewFakeClockAt(t0)

	seq := demo.New(backend, demoConfig, logger.New("error"), demo.WithClock(fc), demo.WithBroadcaster(bc))
	t.Cleanup(seq.Close)

	expectHappyEntry(backend)
	backend.EXPECT().SetSlotOccupied(gomock.Any(), "SLOT_A2", false).Return(nil)

	gomock.InOrder(
		bc.EXPECT().BroadcastSlotUpdate(gomock.Any(), dto.Slot{SlotID: "SLOT_A2", SlotName: "A2", CameraID: "CAM_01", IsOccupied: true}).Return(nil),
		bc.EXPECT().BroadcastSessionUpdate(gomock.Any(), gomock.AssignableToTypeOf(dto.DemoSession{})).Return(nil),
		bc.EXPECT().BroadcastSlotUpdate(gomock.Any(), dto.Slot{SlotID: "SLOT_A2", IsOccupied: false}).Return(errors.New("hub closed")),
		bc.EXPECT().BroadcastSessionUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data interface{}) error {
			session, ok := data.(dto.DemoSession)
			assert.True(t, ok)
			assert.Equal(t, demo.SessionStatusClosed, session.Status)

			return nil
		}),
	)

	require.NoError(t, seq.StartEntry(context.Background()))
	runToEnd(t, fc, seq)
	require.NoError(t, seq.StartExit(context.Background()))
	runToEnd(t, fc, seq)

	// a failed broadcast does not fail the run
	assert.Equal(t, demo.PhaseCompleted, seq.Snapshot().Phase)
}
