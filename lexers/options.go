package lexers

import (
	"fmt"
	"log/slog"
)

// PositionMode selects how consumed characters move the cursor position.
type PositionMode uint8

const (
	// LineColumn bumps the line on a newline and the character otherwise.
	LineColumn PositionMode = iota
	// Legacy bumps the line on every consumed character and never the character.
	Legacy
)

func (p PositionMode) String() string {
	switch p {
	case LineColumn:
		return "line-column"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("PositionMode(%d)", uint8(p))
}

func ParsePositionMode(str string) (PositionMode, error) {
	switch str {
	case "", "line-column":
		return LineColumn, nil
	case "legacy":
		return Legacy, nil
	}
	return 0, fmt.Errorf("unknown position mode: %s", str)
}

type Options struct {
	Positions PositionMode
	// DoubledOverAdvance skips one extra character after ++ -- && ||
	DoubledOverAdvance bool
	Logger             *slog.Logger
}

type Option func(*Options)

func WithPositions(mode PositionMode) Option {
	return func(o *Options) {
		o.Positions = mode
	}
}

func WithDoubledOverAdvance(v bool) Option {
	return func(o *Options) {
		o.DoubledOverAdvance = v
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Apply returns options as a list, to be passed to New.
func (o Options) Apply() []Option {
	return []Option{
		WithPositions(o.Positions),
		WithDoubledOverAdvance(o.DoubledOverAdvance),
		WithLogger(o.Logger),
	}
}
