package config

import "time"

// Config is the top-level configuration for dbgvis.
type Config struct {
	Window  WindowSettings  `yaml:"window"`
	Graph   GraphSettings   `yaml:"graph"`
	Console ConsoleSettings `yaml:"console"`
}

// WindowSettings configure the main window and the render cadence.
type WindowSettings struct {
	// Title of the main window tile.
	Title string `yaml:"title,omitempty"`
	// MainTile is the id of the window tile typed updates address.
	MainTile string `yaml:"mainTile,omitempty"`
	// FrameRate in frames per second.
	FrameRate int `yaml:"frameRate,omitempty"`
}

// GraphSettings configure graph defaults for the demo producers.
type GraphSettings struct {
	// DefaultMaxSamples is the history capacity for demo graphs.
	DefaultMaxSamples int `yaml:"defaultMaxSamples,omitempty"`
}

// ConsoleSettings configure the headless console presenter.
type ConsoleSettings struct {
	// SnapshotInterval is how often the presenter dumps the tree.
	SnapshotInterval time.Duration `yaml:"snapshotInterval,omitempty"`
}

// FrameInterval derives the tick duration from the configured frame rate.
func (w WindowSettings) FrameInterval() time.Duration {
	fps := w.FrameRate
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
