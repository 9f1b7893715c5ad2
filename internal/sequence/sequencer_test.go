package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	viewport int
	contents map[string]int
}

func (f *fakeMetrics) ViewportHeight() int { return f.viewport }

func (f *fakeMetrics) ContentHeight(panelID string) (int, bool) {
	h, ok := f.contents[panelID]
	return h, ok
}

type fakeRegistration struct {
	disposed int
}

func (r *fakeRegistration) Dispose() { r.disposed++ }

type fakeEngine struct {
	regs []*fakeRegistration
}

func (e *fakeEngine) Register(Schedule) (Registration, error) {
	reg := &fakeRegistration{}
	e.regs = append(e.regs, reg)
	return reg, nil
}

func TestSequencerChainsPanels(t *testing.T) {
	metrics := &fakeMetrics{
		viewport: 10,
		contents: map[string]int{
			"hero":     25, // ratio 15/25 = 0.6, margin 15
			"features": 10, // fits, no margin
		},
	}
	eng := &fakeEngine{}
	seq := NewSequencer(eng, metrics, DefaultOptions(), nil)

	scheds := seq.Build([]string{"hero", "features", "footer"}, 1)
	require.Len(t, scheds, 2)

	hero := scheds[0]
	assert.InDelta(t, 0, hero.Start, 1e-9)
	assert.InDelta(t, 0.6, hero.FakeScrollRatio, 1e-9)
	assert.InDelta(t, 15, hero.Margin, 1e-9)

	// The margin injected after hero shifts the next panel's trigger point.
	features := scheds[1]
	assert.InDelta(t, 25, features.Start, 1e-9)
	assert.Zero(t, features.Margin)
	assert.InDelta(t, 35, features.End, 1e-9)
}

func TestSequencerSkipsPanelWithoutContent(t *testing.T) {
	metrics := &fakeMetrics{
		viewport: 10,
		contents: map[string]int{
			"hero":     10,
			"security": 10,
		},
	}
	eng := &fakeEngine{}
	seq := NewSequencer(eng, metrics, DefaultOptions(), nil)

	scheds := seq.Build([]string{"hero", "ghost", "security", "footer"}, 1)
	require.Len(t, scheds, 2)

	// The skipped panel still occupies a viewport of document space.
	assert.InDelta(t, 0, scheds[0].Start, 1e-9)
	assert.InDelta(t, 20, scheds[1].Start, 1e-9)
}

func TestSequencerExcludesTrailingPanels(t *testing.T) {
	metrics := &fakeMetrics{
		viewport: 10,
		contents: map[string]int{"a": 10, "b": 10, "c": 10},
	}
	eng := &fakeEngine{}
	seq := NewSequencer(eng, metrics, DefaultOptions(), nil)

	scheds := seq.Build([]string{"a", "b", "c"}, 1)
	require.Len(t, scheds, 2)
	assert.Equal(t, "a", scheds[0].PanelID)
	assert.Equal(t, "b", scheds[1].PanelID)
}

func TestSequencerRebuildDisposesPriorRegistrations(t *testing.T) {
	metrics := &fakeMetrics{
		viewport: 10,
		contents: map[string]int{"a": 12, "b": 10},
	}
	eng := &fakeEngine{}
	seq := NewSequencer(eng, metrics, DefaultOptions(), nil)

	seq.Build([]string{"a", "b", "c"}, 1)
	require.Len(t, eng.regs, 2)

	metrics.viewport = 20
	seq.Rebuild([]string{"a", "b", "c"}, 1)

	// The first build's registrations were disposed exactly once; the
	// rebuild added fresh ones.
	require.Len(t, eng.regs, 4)
	assert.Equal(t, 1, eng.regs[0].disposed)
	assert.Equal(t, 1, eng.regs[1].disposed)
	assert.Equal(t, 0, eng.regs[2].disposed)
	assert.Equal(t, 0, eng.regs[3].disposed)
}

func TestSequencerRebuildIsDeterministic(t *testing.T) {
	metrics := &fakeMetrics{
		viewport: 10,
		contents: map[string]int{"a": 25, "b": 14},
	}
	eng := &fakeEngine{}
	seq := NewSequencer(eng, metrics, DefaultOptions(), nil)

	first := append([]Schedule{}, seq.Build([]string{"a", "b", "c"}, 1)...)
	second := seq.Rebuild([]string{"a", "b", "c"}, 1)

	assert.Equal(t, first, second)
}

func TestSequencerTotalHeight(t *testing.T) {
	metrics := &fakeMetrics{
		viewport: 10,
		contents: map[string]int{"a": 25},
	}
	seq := NewSequencer(&fakeEngine{}, metrics, DefaultOptions(), nil)

	seq.Build([]string{"a", "b"}, 1)

	// Two viewports plus hero's 15-cell margin.
	assert.InDelta(t, 35, seq.TotalHeight(2), 1e-9)
}
