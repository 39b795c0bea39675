package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

func laptopAnswers() footprint.Answers {
	return footprint.Answers{
		Devices: []footprint.Device{{Type: footprint.DeviceLaptop, Count: 1, HoursPerDay: 8, AgeYears: 3}},
	}
}

func newTestLiveModel() *LiveModel {
	return NewLiveModel(laptopAnswers(), LiveOptions{PricePerTonne: 3000, Currency: "INR", Precision: 2})
}

func fieldIndex(t *testing.T, m *LiveModel, key string) int {
	t.Helper()
	for i, f := range m.fields {
		if f.Key == key {
			return i
		}
	}
	require.FailNow(t, "field not found", key)
	return -1
}

func press(m *LiveModel, msg tea.KeyMsg) *LiveModel {
	next, _ := m.Update(msg)
	return next.(*LiveModel)
}

func TestNewLiveModel(t *testing.T) {
	m := newTestLiveModel()

	assert.Equal(t, LiveStateEditing, m.state)
	assert.Equal(t, m.Baseline(), m.Result())
	assert.InDelta(t, 0.722, m.Result().Total, 0.01)
	assert.InDelta(t, m.Result().Total*365*3, m.projection.CostEstimate, 1e-9)
	assert.Len(t, m.fields, 10+2*len(footprint.DeviceTypes))
}

func TestLiveModel_Navigation(t *testing.T) {
	m := newTestLiveModel()

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.focused, "cannot move above the first field")

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.focused)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, m.focused)

	for range len(m.fields) + 5 {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.fields)-1, m.focused)
}

func TestLiveModel_ChoiceEditReestimates(t *testing.T) {
	m := newTestLiveModel()
	m.focused = fieldIndex(t, m, "streamingEntertainmentHours")

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "None", m.answers.StreamingEntertainmentHours)
	assert.Zero(t, m.Result().Streaming)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Less than 5 hours", m.answers.StreamingEntertainmentHours)
	assert.InDelta(t, 2.5*0.055/7, m.Result().Streaming, 1e-12)
	assert.Greater(t, m.Result().Total, m.Baseline().Total)

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Empty(t, m.answers.StreamingEntertainmentHours)
	assert.Equal(t, unsetLabel, m.FieldValue(m.fields[m.focused]))
}

func TestLiveModel_DeviceEdit(t *testing.T) {
	m := newTestLiveModel()
	m.focused = fieldIndex(t, m, footprint.DeviceLaptop+".count")

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.answers.Devices[0].Count)
	assert.InDelta(t, 2*m.Baseline().Devices, m.Result().Devices, 1e-9)
	assert.Equal(t, "2", m.FieldValue(m.fields[m.focused]))

	for range 5 {
		m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Zero(t, m.answers.Devices[0].Count, "count never goes negative")
	assert.Zero(t, m.Result().Total)

	m.focused = fieldIndex(t, m, footprint.DeviceTablet+".hours")
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	require.Len(t, m.answers.Devices, 2)
	assert.Equal(t, footprint.DeviceTablet, m.answers.Devices[1].Type)
	assert.InDelta(t, hoursStep, m.answers.Devices[1].HoursPerDay, 1e-12)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Equal(t, laptopAnswers().Devices, m.answers.Devices)
	assert.Equal(t, m.Baseline(), m.Result())
}

func TestLiveModel_HoursClamp(t *testing.T) {
	m := newTestLiveModel()
	m.focused = fieldIndex(t, m, footprint.DeviceLaptop+".hours")
	for range 40 {
		m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.InDelta(t, float64(maxDeviceHours), m.answers.Devices[0].HoursPerDay, 1e-12)
}

func TestLiveModel_Quit(t *testing.T) {
	t.Run("q quits without saving", func(t *testing.T) {
		m := newTestLiveModel()
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		lm := next.(*LiveModel)
		assert.Equal(t, LiveStateQuitting, lm.state)
		assert.False(t, lm.Saved())
		assert.Empty(t, lm.View())
	})

	t.Run("s saves and quits", func(t *testing.T) {
		m := newTestLiveModel()
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
		require.NotNil(t, cmd)
		assert.True(t, next.(*LiveModel).Saved())
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m := newTestLiveModel()
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.Equal(t, LiveStateQuitting, next.(*LiveModel).state)
	})
}

func TestLiveModel_Answers_IsCopy(t *testing.T) {
	m := newTestLiveModel()
	a := m.Answers()
	a.Devices[0].Count = 50
	assert.Equal(t, 1, m.answers.Devices[0].Count)
}

func TestLiveModel_View(t *testing.T) {
	m := newTestLiveModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Live Digital Carbon Footprint")
	assert.Contains(t, view, LabelDevices)
	assert.Contains(t, view, "kg/day")
	assert.Contains(t, view, "Academic streaming")
	assert.Contains(t, view, "s: Save & quit")
	assert.Contains(t, view, "₹")
}

func TestCycle(t *testing.T) {
	opts := []string{"a", "b"}
	tests := []struct {
		current string
		dir     int
		want    string
	}{
		{"", 1, "a"},
		{"a", 1, "b"},
		{"b", 1, ""},
		{"", -1, "b"},
		{"a", -1, ""},
		{"unknown", 1, "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cycle(opts, tt.current, tt.dir), "%q %+d", tt.current, tt.dir)
	}
}
