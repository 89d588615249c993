// Package kruskal defines options, message catalogs and sentinel errors for
// the step-recording Kruskal engine.
package kruskal

import (
	"errors"
	"log/slog"
	"strconv"
)

// ErrNilGraph indicates that Run received a nil graph.
var ErrNilGraph = errors.New("kruskal: nil graph")

// ErrInvalidGraph indicates that the graph failed core.Graph.Validate:
// dangling endpoints, self-loops, duplicate link ids or negative weights.
var ErrInvalidGraph = errors.New("kruskal: invalid graph")

// Messages is the catalog of step descriptions written into the history.
//
// Fields:
//
//	Start    - message of step 0.
//	Consider - formats the "currently evaluating" step for a link a–b of weight w.
//	Accept   - message after a link joins two components.
//	Reject   - message after a link is skipped because it closes a cycle.
type Messages struct {
	Start    string
	Consider func(a, b int, w float64) string
	Accept   string
	Reject   string
}

// EnglishMessages is the default catalog.
var EnglishMessages = Messages{
	Start: "start",
	Consider: func(a, b int, w float64) string {
		return "considering edge between " + strconv.Itoa(a) + " and " + strconv.Itoa(b) +
			", weight " + formatWeight(w)
	},
	Accept: "accepted, no cycle",
	Reject: "cycle detected, edge skipped",
}

// ChineseMessages is the Simplified Chinese catalog.
var ChineseMessages = Messages{
	Start: "开始",
	Consider: func(a, b int, w float64) string {
		return "选择 " + strconv.Itoa(a) + " 到 " + strconv.Itoa(b) + "，权重为 " + formatWeight(w) + " 的边"
	},
	Accept: "不成环，加入到最小生成树",
	Reject: "成环，跳过这条边",
}

// MessagesFor returns the catalog for a language tag ("en", "zh").
// Unknown tags fall back to EnglishMessages and ok=false.
func MessagesFor(lang string) (Messages, bool) {
	switch lang {
	case "", "en":
		return EnglishMessages, true
	case "zh":
		return ChineseMessages, true
	default:
		return EnglishMessages, false
	}
}

// formatWeight renders integral weights without a fractional part.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// Options configures Run. Use DefaultOptions for the defaults.
//
// Fields:
//
//	Messages Messages     - step message catalog (EnglishMessages).
//	Logger   *slog.Logger - optional debug logger; nil disables logging.
type Options struct {
	Messages Messages
	Logger   *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithMessages selects the step message catalog. Panics when the catalog
// has no Consider formatter.
func WithMessages(m Messages) Option {
	if m.Consider == nil {
		panic("kruskal: WithMessages with nil Consider")
	}
	return func(o *Options) {
		o.Messages = m
	}
}

// WithLogger attaches a logger that receives one debug record per step.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with the English catalog and no logger.
func DefaultOptions() Options {
	return Options{Messages: EnglishMessages}
}
