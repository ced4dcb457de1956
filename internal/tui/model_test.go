package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iburimskiy/radialprogress/internal/config"
	"github.com/iburimskiy/radialprogress/internal/radial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(opts ...func(*config.Config)) config.Config {
	c := config.Config{Max: 100, Widget: radial.DefaultOptions()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func newTestModel(t *testing.T, cfg config.Config) *Model {
	t.Helper()
	m, err := New(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(m.Widget().Destroy)
	return m
}

func TestModel_ViewShowsRingAndLabel(t *testing.T) {
	m := newTestModel(t, testConfig(func(c *config.Config) { c.Value = 42 }))

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, config.TerminalSize/2+1)
	assert.Contains(t, view, "42%")
	assert.Contains(t, view, "▀")
}

func TestModel_KeysChangeValue(t *testing.T) {
	m := newTestModel(t, testConfig())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 10.0, m.Widget().Value())
	assert.Contains(t, m.View(), "10%")

	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 0.0, m.Widget().Value())
}

func TestModel_KeysConfigure(t *testing.T) {
	m := newTestModel(t, testConfig())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Equal(t, radial.Clockwise, m.Widget().Options().Direction)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.False(t, m.Widget().Options().ShowPercentText)
	assert.NotContains(t, m.View(), "0%")

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 105.0, m.Widget().Options().StartAngle)
}

func TestModel_TicksDriveAutoIncrement(t *testing.T) {
	m := newTestModel(t, testConfig(func(c *config.Config) {
		c.Widget.Animation.Enabled = true
		c.Widget.Animation.Interval = 100 * time.Millisecond
	}))
	assert.Equal(t, 1.0, m.Widget().Value())

	start := time.Now()
	_, cmd := m.Update(tickMsg(start))
	assert.NotNil(t, cmd)
	m.Update(tickMsg(start.Add(250 * time.Millisecond)))
	assert.Equal(t, 3.0, m.Widget().Value())
}

func TestModel_QuitDestroysWidget(t *testing.T) {
	m := newTestModel(t, testConfig(func(c *config.Config) {
		c.Widget.Animation.Enabled = true
	}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, radial.Stopped, m.Widget().State())
	assert.Empty(t, m.View())
}

func TestModel_WindowSizeRedraws(t *testing.T) {
	m := newTestModel(t, testConfig(func(c *config.Config) { c.Value = 7 }))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "7%")
}

func TestScaleToTerminal(t *testing.T) {
	assert.InDelta(t, 2.56, scaleToTerminal(12, 150), 1e-9)
	assert.Equal(t, 5.0, scaleToTerminal(5, 0))
}
