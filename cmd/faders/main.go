package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alkime/faders/internal/config"
	"github.com/alkime/faders/internal/geometry"
	"github.com/alkime/faders/internal/logger"
	"github.com/alkime/faders/internal/mixer"
	"github.com/alkime/faders/internal/tui"
	"github.com/alkime/faders/pkg/collections"
	"github.com/alkime/faders/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// CLI defines the faders command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Launch the mixer board"`

	// Subcommands
	Map   MapCmd   `cmd:"" help:"Print where each value of a range sits on a track"`
	Ticks TicksCmd `cmd:"" help:"Print the tick marks of a track as path data"`
}

// TUICmd is the default command that runs the board.
type TUICmd struct {
	Set map[string]float64 `flag:"" optional:"" help:"Initial control values (e.g. --set volume=-20)"`
}

// Run executes the TUI command.
func (c *TUICmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, closeLog, err := logOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.SetupLogger(cfg, out)

	board, err := mixer.NewBoard(mixer.DefaultSpecs()...)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}

	for id, v := range c.Set {
		if _, ok := findSpec(board, id); !ok {
			return fmt.Errorf("unknown control %q", id)
		}

		board.Fader(id).Set(v)
	}

	zones := zone.New()
	defer zones.Close()

	model := tui.New(tui.Config{
		FastFactor:    cfg.FastScrollFactor,
		ReleaseOnBlur: cfg.ReleaseOnBlur,
		TickCount:     cfg.TickCount,
	}, board, zones)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	for _, spec := range board.Specs() {
		fmt.Printf("%-7s %s\n", spec.Label, spec.Format(board.Value(spec.ID)))
	}

	return nil
}

// logOutput opens the log file, or discards logs when path is empty since
// the board owns the terminal.
func logOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close log file", "error", err)
		}
	}, nil
}

func findSpec(board *mixer.Board, id string) (mixer.Spec, bool) {
	for _, s := range board.Specs() {
		if s.ID == id {
			return s, true
		}
	}

	return mixer.Spec{}, false
}

// MapCmd prints the value to position table of a track.
type MapCmd struct {
	Min         float64 `flag:"" default:"-60" help:"Range minimum"`
	Max         float64 `flag:"" default:"0" help:"Range maximum"`
	Step        float64 `flag:"" default:"6" help:"Value step between rows"`
	Length      float64 `flag:"" default:"100" help:"Track length"`
	Indicator   float64 `flag:"" default:"10" help:"Indicator size"`
	Orientation string  `flag:"" default:"vertical" enum:"vertical,horizontal" help:"Track orientation"`
}

// Run executes the map command.
func (c *MapCmd) Run() error {
	r := uictl.Range[float64]{Min: c.Min, Max: c.Max, Step: c.Step}
	if r.Degenerate() {
		return fmt.Errorf("empty range [%v, %v]", c.Min, c.Max)
	}

	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", c.Step)
	}

	orient := geometry.Vertical
	if c.Orientation == "horizontal" {
		orient = geometry.Horizontal
	}

	var values []float64
	for i := 0.0; r.Min+i*r.Step < r.Max; i++ {
		values = append(values, r.Min+i*r.Step)
	}

	values = append(values, r.Max)

	rows := collections.Apply(values, func(v float64) string {
		p := geometry.ValueToPosition(v, 0, r, c.Indicator, c.Length, orient)
		pos := p.Y
		if orient == geometry.Horizontal {
			pos = p.X
		}

		return fmt.Sprintf("%10s %10s", format(v), format(pos))
	})

	fmt.Printf("%10s %10s\n", "value", "position")
	fmt.Println(strings.Join(rows, "\n"))

	return nil
}

// TicksCmd prints the tick path of a track.
type TicksCmd struct {
	Length    float64 `flag:"" default:"100" help:"Track length"`
	Indicator float64 `flag:"" default:"10" help:"Indicator size"`
	Width     float64 `flag:"" default:"50" help:"Surface width"`
	Count     int     `flag:"" default:"11" help:"Number of ticks"`
}

// Run executes the ticks command.
//
//nolint:unparam // error return required by Kong interface
func (c *TicksCmd) Run() error {
	fmt.Println(geometry.PathData(geometry.Ticks(c.Indicator, c.Length, c.Width, c.Count)))

	return nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
