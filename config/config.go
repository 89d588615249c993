// Package config loads the kruskalview settings file.
//
//	graph:
//	  preset: hexagon            # exactly one of preset, matrix, random
//	  matrix: [[-1, 1], [1, -1]]
//	  random: {nodes: 8, seed: 42}
//	playback:
//	  interval: 400ms
//	  autoplay: true
//	messages: en                 # en | zh
//	log:
//	  level: info                # debug | info | warn | error
//	  format: text               # text | json
//
// Missing keys keep the values of Default. Command-line flags override the
// file after loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/kruskalview/builder"
	"github.com/katalvlaran/kruskalview/core"
	"github.com/katalvlaran/kruskalview/internal/ctxlog"
	"github.com/katalvlaran/kruskalview/kruskal"
	"github.com/katalvlaran/kruskalview/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrGraphSource means zero or several graph sources are set.
	ErrGraphSource = errors.New("config: exactly one of graph.preset, graph.matrix, graph.random must be set")
	// ErrInvalid wraps every other validation failure.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the whole settings document.
type Config struct {
	Graph    GraphSource `yaml:"graph"`
	Playback Playback    `yaml:"playback"`
	Lang     string      `yaml:"messages"`
	Log      Log         `yaml:"log"`
}

// GraphSource selects where the initial graph comes from.
type GraphSource struct {
	Preset string           `yaml:"preset,omitempty"`
	Matrix matrix.Adjacency `yaml:"matrix,omitempty"`
	Random *Random          `yaml:"random,omitempty"`
}

// Random requests a generated graph. A nil Seed uses the clock.
type Random struct {
	Nodes int    `yaml:"nodes"`
	Seed  *int64 `yaml:"seed,omitempty"`
}

// Playback configures the interactive player.
type Playback struct {
	Interval time.Duration `yaml:"interval"`
	Autoplay bool          `yaml:"autoplay"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings: the hexagon preset, a 500ms step
// interval, English messages and info-level text logs.
func Default() *Config {
	return &Config{
		Graph:    GraphSource{Preset: builder.PresetHexagon},
		Playback: Playback{Interval: 500 * time.Millisecond},
		Lang:     "en",
		Log:      Log{Level: "info", Format: "text"},
	}
}

// Load reads and validates the file at path. A graph section in the file
// replaces the default graph source entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a settings document over Default and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Graph = GraphSource{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Graph.count() == 0 {
		cfg.Graph = Default().Graph
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (s GraphSource) count() int {
	n := 0
	if s.Preset != "" {
		n++
	}
	if s.Matrix != nil {
		n++
	}
	if s.Random != nil {
		n++
	}
	return n
}

// Validate checks every field without building the graph.
func (c *Config) Validate() error {
	if c.Graph.count() != 1 {
		return ErrGraphSource
	}
	if c.Graph.Random != nil && c.Graph.Random.Nodes < 1 {
		return fmt.Errorf("%w: graph.random.nodes=%d", ErrInvalid, c.Graph.Random.Nodes)
	}
	if c.Graph.Matrix != nil {
		if err := matrix.Validate(c.Graph.Matrix); err != nil {
			return fmt.Errorf("%w: graph.matrix: %w", ErrInvalid, err)
		}
	}
	if c.Playback.Interval <= 0 {
		return fmt.Errorf("%w: playback.interval=%s", ErrInvalid, c.Playback.Interval)
	}
	if _, ok := kruskal.MessagesFor(c.Lang); !ok {
		return fmt.Errorf("%w: messages=%q", ErrInvalid, c.Lang)
	}
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := ctxlog.CheckFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Adjacency resolves the configured graph source to a matrix.
func (c *Config) Adjacency() (matrix.Adjacency, error) {
	switch {
	case c.Graph.count() != 1:
		return nil, ErrGraphSource
	case c.Graph.Preset != "":
		return builder.Preset(c.Graph.Preset)
	case c.Graph.Matrix != nil:
		return c.Graph.Matrix, nil
	default:
		var opts []builder.Option
		if c.Graph.Random.Seed != nil {
			opts = append(opts, builder.WithSeed(*c.Graph.Random.Seed))
		}
		return builder.RandomMatrix(c.Graph.Random.Nodes, opts...)
	}
}

// BuildGraph resolves the configured graph source and builds the graph.
func (c *Config) BuildGraph() (*core.Graph, error) {
	a, err := c.Adjacency()
	if err != nil {
		return nil, err
	}

	return matrix.ToGraph(a)
}

// Catalog returns the message catalog for Lang, falling back to English.
func (c *Config) Catalog() kruskal.Messages {
	m, _ := kruskal.MessagesFor(c.Lang)
	return m
}
