package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boskolife/pincoin/internal/sequence"
)

type recordingApplier struct {
	applied map[string][]PanelState
}

func newRecordingApplier() *recordingApplier {
	return &recordingApplier{applied: make(map[string][]PanelState)}
}

func (r *recordingApplier) Apply(panelID string, state PanelState) {
	r.applied[panelID] = append(r.applied[panelID], state)
}

func (r *recordingApplier) last(panelID string) (PanelState, bool) {
	states := r.applied[panelID]
	if len(states) == 0 {
		return PanelState{}, false
	}
	return states[len(states)-1], true
}

func walletSchedule(t *testing.T) sequence.Schedule {
	t.Helper()
	sched, err := sequence.BuildSchedule(
		sequence.Panel{ID: "wallet", Top: 0, ContentHeight: 2000}, 800,
		sequence.DefaultOptions(),
	)
	require.NoError(t, err)
	return sched
}

func TestEvaluateBeforeRange(t *testing.T) {
	sched := walletSchedule(t)
	sched.Start = 1000
	sched.End = 3000

	state := Evaluate(sched, 500)
	assert.Equal(t, 1.0, state.Scale)
	assert.Equal(t, 1.0, state.Opacity)
	assert.Zero(t, state.TranslateY)
	assert.False(t, state.Pinned)
}

func TestEvaluateFakeScrollPhase(t *testing.T) {
	sched := walletSchedule(t)

	// Halfway through the fake-scroll phase (ratio 0.6, so progress 0.3):
	// the content has moved half a viewport, nothing else has started.
	state := Evaluate(sched, 600)
	assert.InDelta(t, 0.3, state.Progress, 1e-9)
	assert.InDelta(t, -400, state.TranslateY, 1e-9)
	assert.Equal(t, 1.0, state.Scale)
	assert.Equal(t, 1.0, state.Opacity)
	assert.True(t, state.Pinned)
}

func TestEvaluateExitTransition(t *testing.T) {
	sched := walletSchedule(t)

	// Progress 0.78 is halfway through the scale/partial-fade window
	// [0.6, 0.96].
	state := Evaluate(sched, 1560)
	assert.InDelta(t, -800, state.TranslateY, 1e-9)
	assert.InDelta(t, 0.85, state.Scale, 1e-9)
	assert.InDelta(t, 0.95, state.Opacity, 1e-9)
	assert.True(t, state.Pinned)
}

func TestEvaluatePastRange(t *testing.T) {
	sched := walletSchedule(t)

	state := Evaluate(sched, 5000)
	assert.InDelta(t, 1.0, state.Progress, 1e-9)
	assert.InDelta(t, 0.7, state.Scale, 1e-9)
	assert.Zero(t, state.Opacity)
	assert.False(t, state.Pinned)
}

func TestEngineAppliesOnScroll(t *testing.T) {
	applier := newRecordingApplier()
	eng := New(applier, nil)

	_, err := eng.Register(walletSchedule(t))
	require.NoError(t, err)

	eng.SetScroll(600)

	state, ok := applier.last("wallet")
	require.True(t, ok)
	assert.InDelta(t, -400, state.TranslateY, 1e-9)
	assert.Equal(t, 1, eng.ActiveCount())
}

func TestEngineDisposeStopsEvaluation(t *testing.T) {
	applier := newRecordingApplier()
	eng := New(applier, nil)

	reg, err := eng.Register(walletSchedule(t))
	require.NoError(t, err)

	eng.SetScroll(100)
	require.Len(t, applier.applied["wallet"], 1)

	reg.Dispose()
	reg.Dispose() // disposal is idempotent

	eng.SetScroll(200)
	assert.Len(t, applier.applied["wallet"], 1)
	assert.Zero(t, eng.ActiveCount())
}

func TestEngineMultipleTimelines(t *testing.T) {
	applier := newRecordingApplier()
	eng := New(applier, nil)

	first := walletSchedule(t)

	second := walletSchedule(t)
	second.PanelID = "features"
	second.Start = 2100
	second.End = 4100

	_, err := eng.Register(first)
	require.NoError(t, err)
	_, err = eng.Register(second)
	require.NoError(t, err)

	eng.SetScroll(2100)

	walletState, ok := applier.last("wallet")
	require.True(t, ok)
	assert.False(t, walletState.Pinned)
	assert.Zero(t, walletState.Opacity)

	featuresState, ok := applier.last("features")
	require.True(t, ok)
	assert.True(t, featuresState.Pinned)
	assert.Equal(t, 1.0, featuresState.Opacity)
}

func TestEvaluateZeroLengthRange(t *testing.T) {
	sched := sequence.Schedule{PanelID: "broken", Start: 100, End: 100}
	state := Evaluate(sched, 100)
	assert.Equal(t, 1.0, state.Scale)
	assert.Equal(t, 1.0, state.Opacity)
}
