package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

var replayCmd = &cobra.Command{
	Use:   "replay [solve-id]",
	Short: "Replay a recorded solve in the terminal",
	Long: `Replay a recorded solve move by move, rendering the cube after every
turn.

Keyboard shortcuts:
  space/n - Next move (step mode) or pause/resume
  p       - Pause/resume
  r       - Restart from the scramble
  +/-     - Change playback speed
  q/Esc   - Quit

Use --last to replay the most recent solve, or --step to advance
manually.`,
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
	replayLast  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent solve")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := lookupSolve(storageRepo(db), args, replayLast)
	if err != nil {
		return err
	}
	if s.Solution == nil {
		return fmt.Errorf("solve %s has no recorded solution", s.SolveID)
	}

	var scramble []nxncube.Move
	if s.Scramble != nil {
		scramble, err = nxncube.ParseMoves(*s.Scramble)
		if err != nil {
			return fmt.Errorf("failed to parse scramble: %w", err)
		}
	}
	solution, err := nxncube.ParseMoves(*s.Solution)
	if err != nil {
		return fmt.Errorf("failed to parse solution: %w", err)
	}

	model, err := newReplayModel(s.SolveID, s.Size, scramble, solution, replaySpeed, replayStep)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type replayModel struct {
	solveID  string
	size     int
	scramble []nxncube.Move
	solution []nxncube.Move

	cube      *nxncube.Cube
	moveIndex int
	speed     float64
	stepMode  bool
	paused    bool
	quitting  bool
}

func newReplayModel(solveID string, size int, scramble, solution []nxncube.Move, speed float64, stepMode bool) (*replayModel, error) {
	m := &replayModel{
		solveID:  solveID,
		size:     size,
		scramble: scramble,
		solution: solution,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// reset rewinds the cube to the scrambled state.
func (m *replayModel) reset() error {
	c, err := nxncube.NewCube(m.size)
	if err != nil {
		return err
	}
	c.ApplyMoves(m.scramble)
	m.cube = c
	m.moveIndex = 0
	return nil
}

type replayTickMsg time.Time

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil // Wait for user input in step mode
	}
	return m.scheduleNextMove()
}

func (m *replayModel) scheduleNextMove() tea.Cmd {
	if m.moveIndex >= len(m.solution) {
		return nil
	}
	delay := time.Duration(float64(400*time.Millisecond) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) advance() {
	if m.moveIndex < len(m.solution) {
		m.cube.Apply(m.solution[m.moveIndex])
		m.moveIndex++
	}
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.advance()
			} else {
				m.paused = true
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextMove()
			}

		case "r":
			if err := m.reset(); err != nil {
				m.quitting = true
				return m, tea.Quit
			}
			if !m.stepMode && !m.paused {
				return m, m.scheduleNextMove()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayTickMsg:
		if !m.paused {
			m.advance()
			return m, m.scheduleNextMove()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("Replay %s (%dx%d)", m.solveID, m.size, m.size))

	progress := fmt.Sprintf("move %d/%d", m.moveIndex, len(m.solution))
	if m.paused {
		progress += "  [paused]"
	}
	if m.moveIndex >= len(m.solution) {
		progress += "  done"
	}

	last := ""
	if m.moveIndex > 0 {
		last = "last: " + moveStyle.Render(m.solution[m.moveIndex-1].Notation())
	}

	help := "space/n next  p pause  r restart  +/- speed  q quit"

	return header + "\n\n" +
		RenderNet(m.cube) + "\n" +
		statusStyle.Render(progress) + "  " + last + "\n" +
		helpStyle.Render(help) + "\n"
}
