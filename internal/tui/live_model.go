package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/greenops"
)

// LiveState is the state of the live estimate TUI.
type LiveState int

const (
	// LiveStateEditing is the normal editing state.
	LiveStateEditing LiveState = iota
	// LiveStateQuitting means the program is exiting.
	LiveStateQuitting
)

// FieldKind selects how a field is edited.
type FieldKind int

const (
	// FieldChoice cycles through a fixed list of labels.
	FieldChoice FieldKind = iota
	// FieldCount steps a device count.
	FieldCount
	// FieldHours steps a device's daily hours.
	FieldHours
)

// Editing limits.
const (
	maxDeviceCount = 99
	maxDeviceHours = 24
	hoursStep      = 0.5
	unsetLabel     = "(unset)"
)

// Field is one editable answer.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Options []string
	Device  string
}

// LiveOptions configure the live model.
type LiveOptions struct {
	PricePerTonne float64
	Currency      string
	Precision     int
}

// LiveModel is the Bubble Tea model for the live footprint display. Every
// edit re-runs the estimator.
type LiveModel struct {
	opts LiveOptions

	answers  footprint.Answers
	original footprint.Answers
	fields   []Field
	focused  int

	baseline      footprint.Result
	result        footprint.Result
	projection    footprint.Projection
	equivalencies greenops.EquivalencyOutput

	state LiveState
	saved bool

	width  int
	height int
}

// NewLiveModel starts a live session from answers. The starting estimate is
// the baseline deltas are shown against.
func NewLiveModel(answers footprint.Answers, opts LiveOptions) *LiveModel {
	m := &LiveModel{
		opts:     opts,
		answers:  cloneAnswers(answers),
		original: cloneAnswers(answers),
		fields:   LiveFields(),
		state:    LiveStateEditing,
		width:    liveDefaultWidth,
		height:   liveDefaultHeight,
	}
	m.recalculate()
	m.baseline = m.result
	return m
}

// LiveFields returns the editable fields in display order.
func LiveFields() []Field {
	fields := []Field{
		{Key: "streamingAcademicHours", Label: "Academic streaming / week", Options: footprint.StreamingHours.Labels()},
		{Key: "streamingEntertainmentHours", Label: "Entertainment streaming / week", Options: footprint.StreamingHours.Labels()},
		{Key: "cloudServicesUsageHours", Label: "Cloud services hours / week", Options: footprint.CloudHours.Labels()},
		{Key: "aiInteractionsPerDay", Label: "AI interactions / day", Options: footprint.AIInteractions.Labels()},
		{Key: "typeOfAiUsage", Label: "Type of AI usage", Options: footprint.AIUsageTypes},
		{Key: "typicalAiSessionLength", Label: "AI session length", Options: footprint.AISessionLength.Labels()},
		{Key: "primaryChargingHabits", Label: "Charging habits", Options: footprint.ChargingHabits.Labels()},
		{Key: "primaryPowerSource", Label: "Power source", Options: footprint.PowerSources.Labels()},
		{Key: "renewableEnergyUsage", Label: "Renewable energy usage", Options: footprint.RenewableUsage.Labels()},
		{Key: "energyEfficientAppliances", Label: "Efficient appliances", Options: footprint.EfficientAppliances.Labels()},
	}
	for _, d := range footprint.DeviceTypes {
		fields = append(fields,
			Field{Key: d + ".count", Label: d + " count", Kind: FieldCount, Device: d},
			Field{Key: d + ".hours", Label: d + " hours / day", Kind: FieldHours, Device: d},
		)
	}
	return fields
}

func cloneAnswers(a footprint.Answers) footprint.Answers {
	out := a
	out.Devices = append([]footprint.Device(nil), a.Devices...)
	return out
}

// Init initializes the model.
func (m *LiveModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only navigation and editing keys are handled.
func (m *LiveModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = LiveStateQuitting
		return m, tea.Quit

	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyLeft:
		m.step(-1)
	case tea.KeyRight:
		m.step(1)

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = LiveStateQuitting
			return m, tea.Quit
		case "s":
			m.saved = true
			m.state = LiveStateQuitting
			return m, tea.Quit
		case "k":
			m.move(-1)
		case "j":
			m.move(1)
		case "h", "-":
			m.step(-1)
		case "l", "+":
			m.step(1)
		case "r":
			m.answers = cloneAnswers(m.original)
			m.recalculate()
		}
	}
	return m, nil
}

func (m *LiveModel) move(delta int) {
	m.focused = min(max(m.focused+delta, 0), len(m.fields)-1)
}

// step changes the focused field by one increment and re-estimates.
func (m *LiveModel) step(dir int) {
	f := m.fields[m.focused]
	switch f.Kind {
	case FieldChoice:
		ptr := m.choice(f.Key)
		if ptr == nil {
			return
		}
		*ptr = cycle(f.Options, *ptr, dir)
	case FieldCount:
		d := m.device(f.Device)
		d.Count = min(max(d.Count+dir, 0), maxDeviceCount)
	case FieldHours:
		d := m.device(f.Device)
		d.HoursPerDay = min(max(d.HoursPerDay+float64(dir)*hoursStep, 0), maxDeviceHours)
	}
	m.recalculate()
}

// cycle moves from current to the next option in dir, passing through the
// unset value between the last and first options.
func cycle(options []string, current string, dir int) string {
	all := append([]string{""}, options...)
	idx := 0
	for i, o := range all {
		if o == current {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+dir)%n+n)%n]
}

func (m *LiveModel) choice(key string) *string {
	a := &m.answers
	switch key {
	case "streamingAcademicHours":
		return &a.StreamingAcademicHours
	case "streamingEntertainmentHours":
		return &a.StreamingEntertainmentHours
	case "cloudServicesUsageHours":
		return &a.CloudServicesUsageHours
	case "aiInteractionsPerDay":
		return &a.AIInteractionsPerDay
	case "typeOfAiUsage":
		return &a.TypeOfAIUsage
	case "typicalAiSessionLength":
		return &a.TypicalAISessionLength
	case "primaryChargingHabits":
		return &a.PrimaryChargingHabits
	case "primaryPowerSource":
		return &a.PrimaryPowerSource
	case "renewableEnergyUsage":
		return &a.RenewableEnergyUsage
	case "energyEfficientAppliances":
		return &a.EnergyEfficientAppliances
	default:
		return nil
	}
}

// device returns the first inventory line of deviceType, adding an empty one
// if there is none.
func (m *LiveModel) device(deviceType string) *footprint.Device {
	for i := range m.answers.Devices {
		if m.answers.Devices[i].Type == deviceType {
			return &m.answers.Devices[i]
		}
	}
	m.answers.Devices = append(m.answers.Devices, footprint.Device{Type: deviceType})
	return &m.answers.Devices[len(m.answers.Devices)-1]
}

// FieldValue returns the display value of f.
func (m *LiveModel) FieldValue(f Field) string {
	switch f.Kind {
	case FieldCount, FieldHours:
		for _, d := range m.answers.Devices {
			if d.Type != f.Device {
				continue
			}
			if f.Kind == FieldCount {
				return FormatKg(float64(d.Count), 0)
			}
			return FormatKg(d.HoursPerDay, 1)
		}
		return "0"
	default:
		ptr := m.choice(f.Key)
		if ptr == nil || *ptr == "" {
			return unsetLabel
		}
		return *ptr
	}
}

func (m *LiveModel) recalculate() {
	m.result = footprint.Estimate(m.answers)
	m.projection = footprint.Project(m.result, m.opts.PricePerTonne)
	m.equivalencies = greenops.CalculateAnnual(m.result)
}

// Answers returns the edited answers.
func (m *LiveModel) Answers() footprint.Answers {
	return cloneAnswers(m.answers)
}

// Result returns the current estimate.
func (m *LiveModel) Result() footprint.Result {
	return m.result
}

// Baseline returns the estimate the session started from.
func (m *LiveModel) Baseline() footprint.Result {
	return m.baseline
}

// Saved reports whether the user quit with the save key.
func (m *LiveModel) Saved() bool {
	return m.saved
}
