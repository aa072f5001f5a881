package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/simulator"
	"github.com/SeamusWaldron/cubesim/internal/transcript"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive session. Each line is either an algorithm or a
command.

Commands:
  reset        - Solved cube, empty history
  undo         - Revert the last algorithm
  inverse      - Show the inverse of the last algorithm
  scramble [n] - Apply n random moves (default: scramble_length)
  case         - Toggle letter case of typed moves
  size <n>     - Switch to an n x n x n cube
  help         - Show notation help
  quit/exit/q  - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// commandNames are the words matched against whole input lines.
var commandNames = []string{"reset", "undo", "inverse", "scramble", "case", "size", "help", "quit", "exit"}

type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model
type playModel struct {
	sim        *simulator.Simulator
	cfg        config.Config
	log        logrus.FieldLogger
	transcript *transcript.Writer

	// UI
	input       textinput.Model
	keys        keyMap
	caseToggled bool
	showHelp    bool
	status      string
	err         error
	quitting    bool
}

func newPlayModel(sim *simulator.Simulator, c config.Config, log logrus.FieldLogger, tw *transcript.Writer) *playModel {
	inp := textinput.New()
	inp.Placeholder = "R U R' U' or a command (help)"
	inp.Prompt = "> "
	inp.Focus()

	return &playModel{
		sim:         sim,
		cfg:         c,
		log:         log,
		transcript:  tw,
		input:       inp,
		keys:        defaultKeyMap(),
		caseToggled: c.CaseToggled,
	}
}

func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Submit):
			line := m.input.Value()
			m.input.Reset()
			return m, m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) quit() tea.Cmd {
	m.quitting = true
	if err := m.transcript.Close(); err != nil {
		m.log.WithError(err).Warn("Closing transcript failed")
	}
	return tea.Quit
}

// submit handles one input line: a session command or an algorithm.
func (m *playModel) submit(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	m.status, m.err = "", nil

	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "quit", "exit", "q":
		if len(fields) == 1 {
			return m.quit()
		}
	case "reset":
		if len(fields) == 1 {
			m.record(line)
			m.sim.Reset()
			m.status = "Cube reset"
			m.note(m.transcript.Reset(m.sim.Size()))
			return nil
		}
	case "undo":
		if len(fields) == 1 {
			m.record(line)
			m.undo()
			return nil
		}
	case "inverse":
		if len(fields) == 1 {
			m.record(line)
			m.inverse()
			return nil
		}
	case "scramble":
		if len(fields) <= 2 {
			m.record(line)
			m.scramble(fields[1:])
			return nil
		}
	case "case":
		if len(fields) == 1 {
			m.record(line)
			m.caseToggled = !m.caseToggled
			m.status = fmt.Sprintf("Case toggle %s", onOff(m.caseToggled))
			return nil
		}
	case "size":
		if len(fields) == 2 {
			m.record(line)
			m.resize(fields[1])
			return nil
		}
	case "help":
		if len(fields) == 1 {
			m.showHelp = !m.showHelp
			return nil
		}
	}

	m.applyAlgorithm(line)
	return nil
}

func (m *playModel) record(line string) {
	m.note(m.transcript.Command(line))
}

// note logs a transcript write failure without interrupting the session.
func (m *playModel) note(err error) {
	if err != nil {
		m.log.WithError(err).Warn("Writing transcript failed")
	}
}

func (m *playModel) fail(input string, err error) {
	m.err = err
	m.note(m.transcript.Error(input, err))
}

func (m *playModel) applyAlgorithm(line string) {
	input := line
	if m.caseToggled {
		input = notation.SwapCase(line)
	}

	alg, err := m.sim.ApplyAlgorithm(input)
	if err != nil {
		if suggestion := m.suggestCommand(line); suggestion != "" {
			err = fmt.Errorf("unknown command %q (did you mean %q?)", line, suggestion)
		}
		m.fail(line, err)
		return
	}

	solved := m.sim.Cube().IsSolved()
	m.note(m.transcript.Algorithm(alg.String(), solved))
	if solved {
		m.status = "Solved!"
	}
}

// suggestCommand returns the session command a mistyped word was probably
// meant to be. Input that looks like moves gets no suggestion.
func (m *playModel) suggestCommand(line string) string {
	word := strings.ToLower(line)
	if len(word) < 3 || strings.ContainsAny(word, " '`2") {
		return ""
	}
	return notation.Suggest(word, commandNames, 2)
}

func (m *playModel) undo() {
	alg, err := m.sim.Undo()
	if err != nil {
		m.fail("undo", err)
		return
	}
	m.status = fmt.Sprintf("Undid %s", alg)
	m.note(m.transcript.Undo(alg.String()))
}

func (m *playModel) inverse() {
	inv, err := m.sim.InverseOfLast()
	if err != nil {
		m.fail("inverse", err)
		return
	}
	m.status = fmt.Sprintf("Inverse: %s", inv)
}

func (m *playModel) scramble(args []string) {
	count := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			m.fail("scramble", fmt.Errorf("scramble needs a positive move count, got %q", args[0]))
			return
		}
		count = n
	}

	alg, err := m.sim.Scramble(count)
	if err != nil {
		m.fail("scramble", err)
		return
	}
	m.status = fmt.Sprintf("Scrambled with %d moves", len(alg.Moves))
	m.note(m.transcript.Scramble(alg.String()))
}

func (m *playModel) resize(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		m.fail("size", fmt.Errorf("size needs a number, got %q", arg))
		return
	}
	if err := m.sim.Resize(n); err != nil {
		m.fail("size", err)
		return
	}
	m.status = fmt.Sprintf("New %dx%d cube", n, n)
	m.note(m.transcript.Reset(n))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *playModel) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		if path := m.transcript.Path(); path != "" {
			msg += fmt.Sprintf("Transcript saved to: %s\n", path)
		}
		return msg
	}

	var b strings.Builder
	n := m.sim.Size()

	// Title
	b.WriteString(titleStyle.Render(fmt.Sprintf("Cube Simulator %dx%d", n, n)))
	if m.caseToggled {
		b.WriteString(statusStyle.Render("  [case toggled]"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.sim.Cube(), true))
	b.WriteString("\n")

	// History, oldest first
	history := m.sim.History()
	if len(history) > 0 && m.cfg.HistoryLimit > 0 {
		b.WriteString(statusStyle.Render("History:"))
		b.WriteString("\n")
		start := max(0, len(history)-m.cfg.HistoryLimit)
		for i := start; i < len(history); i++ {
			label := ""
			if history[i].Scramble {
				label = " (scramble)"
			}
			b.WriteString(fmt.Sprintf("%3d. %s%s\n", i+1, moveStyle.Render(history[i].String()), label))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		style := statusStyle
		if m.status == "Solved!" {
			style = solvedStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", friendlyError(m.err))))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(helpStyle.Render(notationHelp))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Commands: reset undo inverse scramble [n] case size <n> help quit | esc=quit"))
	b.WriteString("\n")

	return b.String()
}

const notationHelp = `Faces:     R L U D F B      (quarter turn clockwise seen from that face)
Slices:    M E S            (middle layers, follow L, D and F)
Wide:      r l u d f b      (face plus the layer behind it)
Rotations: x y z            (whole cube, follow R, U and F)
Modifiers: ' prime   2 half turn   spaces optional (RUR'U' = R U R' U')`

// friendlyError drops the package prefixes from parse errors.
func friendlyError(err error) error {
	var pe *notation.ParseError
	if errors.As(err, &pe) {
		msg := fmt.Sprintf("%s %q at position %d", pe.Reason, pe.Token, pe.Pos)
		if pe.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", pe.Suggestion)
		}
		return errors.New(msg)
	}
	if errors.Is(err, simulator.ErrEmptyHistory) {
		return errors.New("history is empty")
	}
	return err
}

func runPlay(cmd *cobra.Command, args []string) error {
	sim, err := newSimulator()
	if err != nil {
		return err
	}

	var tw *transcript.Writer
	if cfg.TranscriptDir != "" {
		tw, err = transcript.Create(cfg.TranscriptDir, cfg.Size)
		if err != nil {
			return err
		}
		logger.WithField("path", tw.Path()).Info("Writing transcript")
	}

	model := newPlayModel(sim, cfg, logger, tw)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
