package demo_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smart-parking/console/internal/usecase/demo"
)

func TestCharge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{name: "zero", elapsed: 0, want: 10},
		{name: "seconds only", elapsed: 59 * time.Second, want: 10},
		{name: "first minute", elapsed: time.Minute, want: 20},
		{name: "59 minutes", elapsed: 59 * time.Minute, want: 20},
		{name: "one hour", elapsed: time.Hour, want: 20},
		{name: "61 minutes", elapsed: 61 * time.Minute, want: 40},
		{name: "partial minute is floored", elapsed: 60*time.Minute + 59*time.Second, want: 20},
		{name: "negative clamps", elapsed: -5 * time.Minute, want: 10},
		{name: "a day", elapsed: 24 * time.Hour, want: 480},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tc.want, demo.Charge(tc.elapsed, 20, 10), 0)
		})
	}
}

func TestCharge_MatchesFormulaForEveryMinute(t *testing.T) {
	t.Parallel()

	for m := 0; m <= 48*60; m++ {
		want := math.Max(10, math.Ceil(float64(m)/60)*20)

		assert.InDelta(t, want, demo.Charge(time.Duration(m)*time.Minute, 20, 10), 0, "minutes=%d", m)
	}
}

func TestStageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, demo.StageVehicleApproach, demo.StageName(0))
	assert.Equal(t, demo.StageTimerStart, demo.StageName(8))
	assert.Equal(t, demo.StageExitApproach, demo.StageName(9))
	assert.Equal(t, demo.StageExitGateOpen, demo.StageName(15))
	assert.Empty(t, demo.StageName(16))
	assert.Empty(t, demo.StageName(-1))
}
