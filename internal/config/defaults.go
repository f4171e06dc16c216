package config

import "time"

// DefaultConfig returns the built-in configuration, the base layer every
// file-based setting is merged onto.
func DefaultConfig() Config {
	return Config{
		Window: WindowSettings{
			Title:     "Debug Window",
			MainTile:  "Main",
			FrameRate: 30,
		},
		Graph: GraphSettings{
			DefaultMaxSamples: 240,
		},
		Console: ConsoleSettings{
			SnapshotInterval: 2 * time.Second,
		},
	}
}
