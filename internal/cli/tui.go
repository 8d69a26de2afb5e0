package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// gridTop is the screen line of the first grid row (below the title).
const gridTop = 1

func newTUICmd() *cobra.Command {
	var (
		rows    int
		delay   time.Duration
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a grid and watch searches run",
		Long: `Open an interactive grid editor.

Mouse: left click places start, then end, then barriers; right click erases;
middle click drops the maze seed. Keyboard: arrows move the cursor, enter
places, x erases, w drops the maze seed.

Keys: space runs, a/s A*, b BFS, d DFS, m maze, c clears, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if !cmd.Flags().Changed("rows") {
				rows = cfg.Rows
			}
			if !cmd.Flags().Changed("delay") {
				delay = cfg.Delay.Duration
			}
			algo, err := search.ParseAlgorithm(cfg.Algorithm)
			if err != nil {
				return err
			}

			width := cfg.Width
			if width < rows {
				width = rows
			}
			g, err := grid.New(grid.WithRows(rows), grid.WithWidth(width))
			if err != nil {
				return err
			}

			// The screen belongs to the TUI; records go to a file or nowhere.
			logger := newLogger(io.Discard, charmlog.InfoLevel)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logger = newLogger(f, loggerFromContext(ctx).GetLevel())
			}

			m := newModel(ctx, g, modelConfig{
				algo:  algo,
				near:  cfg.Near,
				far:   cfg.Far,
				delay: delay,
			}, logger)
			final, err := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			).Run()
			if fm, ok := final.(model); ok {
				fm.stop()
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", grid.DefaultRows, "cells per side")
	cmd.Flags().DurationVar(&delay, "delay", defaultDelay, "pause after each step")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append log records to this file")
	return cmd
}

// =============================================================================
// Model
// =============================================================================

type modelConfig struct {
	algo      search.Algorithm
	near, far float64
	delay     time.Duration
	seed      int64 // maze seed; 0 means time based
}

// frameMsg carries a snapshot taken by the worker after one step.
type frameMsg struct {
	states [][]grid.State
}

// doneMsg ends a run.
type doneMsg struct {
	text string
	err  error
}

// model is the interactive editor. While a run is active the worker
// goroutine owns the grid; the model only draws the snapshots it receives.
type model struct {
	parent context.Context
	g      *grid.Grid
	cfg    modelConfig
	logger *charmlog.Logger

	algo     search.Algorithm
	mazeNext bool
	seed     *grid.Cell
	cursor   grid.Coord

	running bool
	cancel  context.CancelFunc
	frames  chan tea.Msg
	frame   [][]grid.State
	status  string
}

func newModel(ctx context.Context, g *grid.Grid, cfg modelConfig, logger *charmlog.Logger) model {
	return model{
		parent: ctx,
		g:      g,
		cfg:    cfg,
		logger: logger,
		algo:   cfg.algo,
		status: "place start and end, then press space",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.running || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		row, col, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = grid.Coord{Row: row, Col: col}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.place()
		case tea.MouseButtonRight:
			m.erase()
		case tea.MouseButtonMiddle:
			m.dropSeed()
		}
	case frameMsg:
		m.frame = msg.states
		return m, m.waitFrame()
	case doneMsg:
		m.stop()
		m.running = false
		m.frame = nil
		m.status = msg.text
		if msg.err != nil {
			m.status = errorLine(msg.err)
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		m.stop()
		return m, tea.Quit
	}
	if m.running {
		return m, nil
	}

	switch key {
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "enter":
		m.place()
	case "x", "backspace":
		m.erase()
	case "w":
		m.dropSeed()
	case "a", "s":
		m.selectAlgorithm(search.AlgorithmAStar)
	case "b":
		m.selectAlgorithm(search.AlgorithmBFS)
	case "d":
		m.selectAlgorithm(search.AlgorithmDFS)
	case "m":
		if m.seed != nil {
			m.mazeNext = true
			m.status = "maze selected"
		} else {
			m.status = "drop a maze seed first (middle click or w)"
		}
	case "c":
		m.g.Reset()
		m.seed = nil
		m.mazeNext = false
		m.status = "grid cleared"
	case " ":
		return m.startRun()
	}
	return m, nil
}

// cellAt maps a screen position to a grid cell through the grid's own
// pixel mapping, one screen line per row.
func (m model) cellAt(x, y int) (row, col int, ok bool) {
	line := y - gridTop
	column := x / render.DefaultCellWidth
	if line < 0 || column < 0 {
		return 0, 0, false
	}
	gap := m.g.Gap()
	row, col = m.g.CellAt(line*gap, column*gap)
	return row, col, m.g.InBounds(row, col)
}

func (m *model) moveCursor(dr, dc int) {
	next := grid.Coord{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if m.g.InBounds(next.Row, next.Col) {
		m.cursor = next
	}
}

// place marks the cursor cell as start, else end, else barrier.
func (m *model) place() {
	c, err := m.g.At(m.cursor)
	if err != nil {
		return
	}
	start, end := m.g.Start(), m.g.End()
	switch {
	case start == nil && c != end:
		c.MakeStart()
	case end == nil && c != start:
		c.MakeEnd()
	case c != start && c != end:
		c.MakeBarrier()
	}
}

// erase resets the cursor cell; the grid forgets it as start or end.
func (m *model) erase() {
	c, err := m.g.At(m.cursor)
	if err != nil {
		return
	}
	c.Reset()
	if c == m.seed {
		m.seed = nil
		m.mazeNext = false
	}
}

// dropSeed marks the maze seed once and selects the maze generator.
func (m *model) dropSeed() {
	if m.seed == nil {
		c, err := m.g.At(m.cursor)
		if err != nil {
			return
		}
		c.MakeBarrier()
		m.seed = c
	}
	m.mazeNext = true
	m.status = "maze selected"
}

func (m *model) selectAlgorithm(a search.Algorithm) {
	m.algo = a
	m.mazeNext = false
	m.status = a.String() + " selected"
}

// startRun recomputes adjacency and hands the grid to a worker goroutine.
func (m model) startRun() (tea.Model, tea.Cmd) {
	if !m.mazeNext && (m.g.Start() == nil || m.g.End() == nil) {
		m.status = "place start and end first"
		return m, nil
	}

	m.g.UpdateNeighbors()
	ctx, cancel := context.WithCancel(m.parent)
	m.cancel = cancel
	m.frames = make(chan tea.Msg)
	m.running = true
	m.frame = m.g.Snapshot()

	w := worker{
		g:      m.g,
		out:    m.frames,
		delay:  m.cfg.delay,
		logger: runLogger(m.logger),
	}
	if m.mazeNext {
		seed := m.cfg.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		// Maze selection is one-shot; the next run searches again.
		m.mazeNext = false
		m.algo = search.AlgorithmAStar
		m.status = "generating maze"
		go w.maze(ctx, m.seed, seed, m.cfg.near, m.cfg.far)
	} else {
		m.g.ClearSearch()
		m.status = "running " + m.algo.String()
		go w.search(ctx, m.algo)
	}
	return m, m.waitFrame()
}

// waitFrame blocks on the next worker message.
func (m model) waitFrame() tea.Cmd {
	ch := m.frames
	return func() tea.Msg {
		return <-ch
	}
}

// stop cancels an active run.
func (m model) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m model) View() string {
	var b strings.Builder

	title := "gridpath · " + m.algo.String()
	if m.mazeNext {
		title = "gridpath · maze"
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")

	cursor := render.WithCursor(m.cursor)
	if m.running && m.frame != nil {
		b.WriteString(render.States(m.frame, cursor))
	} else {
		b.WriteString(render.Grid(m.g, cursor))
	}
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(styleDim.Render("space run  a/b/d algorithm  m maze  c clear  q quit"))
	b.WriteString("\n")
	b.WriteString(render.Legend())
	return b.String()
}

// =============================================================================
// Worker
// =============================================================================

// worker runs one search or maze pass and reports through out. It is the
// only goroutine touching the grid until it sends doneMsg.
type worker struct {
	g      *grid.Grid
	out    chan<- tea.Msg
	delay  time.Duration
	logger *charmlog.Logger
}

// send delivers msg unless ctx is done first.
func (w worker) send(ctx context.Context, msg tea.Msg) {
	select {
	case w.out <- msg:
	case <-ctx.Done():
	}
}

// step publishes a snapshot and paces the run.
func (w worker) step(ctx context.Context) {
	w.send(ctx, frameMsg{states: w.g.Snapshot()})
	if w.delay <= 0 {
		return
	}
	t := time.NewTimer(w.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (w worker) search(ctx context.Context, algo search.Algorithm) {
	res, err := search.Run(algo, w.g, w.g.Start(), w.g.End(),
		search.WithContext(ctx),
		search.WithOnStep(func() { w.step(ctx) }),
		search.WithLogger(w.logger),
	)
	done := doneMsg{err: err}
	if err == nil {
		done.text = fmt.Sprintf("%s: no path (%d expanded)", algo, res.Expanded)
		if res.Found {
			done.text = fmt.Sprintf("%s: %d hops, %d expanded", algo, res.Hops(), res.Expanded)
		}
	}
	w.send(ctx, done)
}

func (w worker) maze(ctx context.Context, seedCell *grid.Cell, seed int64, near, far float64) {
	res, err := maze.Generate(w.g, seedCell,
		maze.WithSeed(seed),
		maze.WithProbabilities(near, far),
		maze.WithContext(ctx),
		maze.WithOnStep(func() { w.step(ctx) }),
		maze.WithLogger(w.logger),
	)
	done := doneMsg{err: err}
	if err == nil {
		done.text = fmt.Sprintf("maze: %d new barriers, %d cells visited", res.Barriers, res.Visited)
	}
	w.send(ctx, done)
}
