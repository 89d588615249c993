// Package player is the interactive terminal front end: it steps through a
// recorded MST history with a bubbletea program and renders the graph state
// as a styled text view.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/katalvlaran/kruskalview/builder"
	"github.com/katalvlaran/kruskalview/core"
	"github.com/katalvlaran/kruskalview/history"
	"github.com/katalvlaran/kruskalview/kruskal"
	"github.com/katalvlaran/kruskalview/matrix"
)

// Playback speed bounds.
const (
	minInterval = 50 * time.Millisecond
	maxInterval = 5 * time.Second
)

// ErrNilGraph is returned by New when no graph is given.
var ErrNilGraph = errors.New("player: graph is nil")

// Options configures a Model.
type Options struct {
	Interval time.Duration
	Autoplay bool
	Messages kruskal.Messages
	Logger   *slog.Logger
	// Rand drives the "g" regenerate key. Nil uses a clock-seeded source.
	Rand *rand.Rand
}

// Model is the player state. The graph is owned by the model: every key
// that edits it also invalidates the history until the next recompute.
type Model struct {
	Width, Height int

	Graph   *core.Graph
	History *history.History
	Cursor  *history.Cursor

	Playing  bool
	Interval time.Duration
	Status   string
	Err      error

	msgs kruskal.Messages
	log  *slog.Logger
	rng  *rand.Rand
	// tick invalidates in-flight tick messages after pause or replay.
	tick int
}

// tickMsg advances autoplay by one step when its id is current.
type tickMsg struct{ id int }

// New records a history for g and positions the player at step 0.
func New(g *core.Graph, opts Options) (Model, error) {
	if g == nil {
		return Model{}, ErrNilGraph
	}
	if opts.Interval <= 0 {
		opts.Interval = 500 * time.Millisecond
	}
	if opts.Messages.Consider == nil {
		opts.Messages = kruskal.EnglishMessages
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		Graph:    g,
		Interval: clampInterval(opts.Interval),
		msgs:     opts.Messages,
		log:      opts.Logger,
		rng:      opts.Rand,
	}
	if err := m.recompute(); err != nil {
		return Model{}, err
	}
	m.Playing = opts.Autoplay

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.Playing {
		return m.scheduleTick()
	}
	return nil
}

// Run starts a bubbletea program for m and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// recompute replaces the history with a fresh run over the current graph
// and seeks to step 0.
func (m *Model) recompute() error {
	h, err := kruskal.Run(m.Graph,
		kruskal.WithMessages(m.msgs),
		kruskal.WithLogger(m.log),
	)
	if err != nil {
		return fmt.Errorf("recompute: %w", err)
	}
	m.History = h
	m.Cursor = history.NewCursor(h)
	m.log.Debug("history recorded", "steps", h.Len(), "nodes", m.Graph.NodeCount(), "links", m.Graph.LinkCount())

	return m.seek()
}

// seek brings the graph to the cursor position.
func (m *Model) seek() error {
	if m.Cursor == nil {
		return nil
	}
	return history.Seek(m.Graph, m.History, m.Cursor.Index())
}

// invalidate drops the history after a topology edit.
func (m *Model) invalidate(status string) {
	m.History = nil
	m.Cursor = nil
	m.Playing = false
	m.tick++
	m.Graph.ResetState()
	m.Status = status
}

// regenerate replaces the graph with a random one of the same size.
func (m *Model) regenerate() error {
	n := m.Graph.NodeCount()
	if n < 1 {
		n = 1
	}
	var opts []builder.Option
	if m.rng != nil {
		opts = append(opts, builder.WithRand(m.rng))
	}
	a, err := builder.RandomMatrix(n, opts...)
	if err != nil {
		return err
	}
	g, err := matrix.ToGraph(a)
	if err != nil {
		return err
	}
	m.Graph = g
	m.Playing = false
	m.tick++

	return m.recompute()
}

func (m Model) scheduleTick() tea.Cmd {
	id := m.tick
	return tea.Tick(m.Interval, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

func clampInterval(d time.Duration) time.Duration {
	if d < minInterval {
		return minInterval
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}
