package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 300
	rotateStep      = 0.1
)

type TickMsg time.Time

type Options struct {
	Bodies   int
	Format   sim.Format
	Scale    float64
	Interval time.Duration
	Title    string
	Theme    string
}

// Model is the live view. Every tick it steps the container while running,
// extracts a frame and plots it.
type Model struct {
	container *sim.Container
	opts      Options
	format    sim.Format
	canvas    *Canvas
	camera    *Camera
	theme     Theme
	styles    styles
	buf       []float32
	running   bool
	drawn     int
	energy    []float64
	drift     *metrics.EnergyDrift
	err       error
}

// NewModel initializes c with opts.Bodies bodies if it is still empty and fits
// the camera to the first frame.
func NewModel(c *sim.Container, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second / 60
	}
	if opts.Title == "" {
		opts.Title = "gravsim"
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		container: c,
		opts:      opts,
		format:    opts.Format,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		camera:    NewCamera(),
		theme:     theme,
		styles:    theme.styles(),
		running:   true,
		energy:    make([]float64, 0, historyCapacity),
		drift:     metrics.NewEnergyDrift(),
	}
	if !c.Initialized() {
		m.err = c.Initialize(opts.Bodies)
	}
	m.fit()
	m.observe()
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "x":
			m.camera.RotateX(rotateStep)
		case "X":
			m.camera.RotateX(-rotateStep)
		case "y":
			m.camera.RotateY(rotateStep)
		case "Y":
			m.camera.RotateY(-rotateStep)
		case "z":
			m.camera.RotateZ(rotateStep)
		case "Z":
			m.camera.RotateZ(-rotateStep)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "m":
			m.toggleMode()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = m.theme.styles()
		}
		m.draw()
	case TickMsg:
		if m.running {
			m.container.Step()
			m.observe()
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) toggleMode() {
	if m.format == sim.FormatXY {
		m.format = sim.FormatXYZ
	} else {
		m.format = sim.FormatXY
	}
}

// reset discards the current engine and builds a fresh one with the same
// body count, whatever the container's reinit policy.
func (m *Model) reset() {
	n := m.container.Len()
	if n == 0 {
		n = m.opts.Bodies
	}
	m.container.Reset()
	m.err = m.container.Initialize(n)
	m.energy = m.energy[:0]
	m.drift.Reset()
	m.fit()
	m.observe()
}

func (m *Model) fit() {
	m.buf = m.container.Extract(m.buf, sim.FormatXYZ, m.opts.Scale)
	m.camera.Fit(m.buf, sim.FormatXYZ.Components())
}

func (m *Model) observe() {
	eng, ok := m.container.Engine()
	if !ok {
		return
	}
	m.drift.Observe(eng)
	m.energy = append(m.energy, eng.Energy())
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.buf = m.container.Extract(m.buf, m.format, m.opts.Scale)
	if m.format == sim.FormatXYZ {
		m.drawn = PlotXYZ(m.canvas, m.camera, m.buf)
	} else {
		m.drawn = PlotXY(m.canvas, m.camera, m.buf)
	}
}

// Running reports whether the view is advancing the simulation.
func (m Model) Running() bool { return m.running }

func (m Model) Format() sim.Format { return m.format }
func (m Model) Camera() *Camera    { return m.camera }
func (m Model) Canvas() *Canvas    { return m.canvas }
func (m Model) Err() error         { return m.err }

func (m Model) View() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.header.Render(strings.ToUpper(m.opts.Title)) + "\n")
	switch {
	case m.err != nil:
		s.WriteString(st.err.Render("ERROR: "+m.err.Error()) + "\n\n")
	case m.running:
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Energy"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Bodies", fmt.Sprintf("%d (%d shown)", m.container.Len(), m.drawn))
	if eng, ok := m.container.Engine(); ok {
		row("Step", fmt.Sprintf("%d", eng.Steps()))
		row("Time", fmt.Sprintf("%.2fs", eng.Time()))
		row("Integrator", eng.Integrator().Name())
	}
	if len(m.energy) > 0 {
		row("Energy", fmt.Sprintf("%.4f", m.energy[len(m.energy)-1]))
	}
	row("Drift", fmt.Sprintf("%.2e", m.drift.Value()))
	row("View", fmt.Sprintf("%s zoom %.2f", strings.ToUpper(m.format.String()), m.camera.Zoom))
	row("Theme", m.theme.Name)

	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\nX/Y/Z:Rotate +/-:Zoom\nM:2D/3D T:Theme"))

	canvasView := st.canvas.Render(m.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

// Run starts the live view on the alternate screen and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
