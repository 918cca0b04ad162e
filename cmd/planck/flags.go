package main

import "flag"

// Command-line flags. Engine tuning lives in the config file; these only
// pick files and the output mode.
var (
	// configFlag points at the engine config; defaults are used when absent.
	configFlag = flag.String("config", "planck.json", "engine config file (JSON)")

	// levelFlag loads a level to edit or render.
	levelFlag = flag.String("level", "", "level file to load; empty starts a blank level")

	// snapshotFlag renders the level with its rays to a PNG and exits.
	snapshotFlag = flag.String("snapshot", "", "write a PNG of the traced level to this path and exit")

	// scaleFlag sets output pixels per display unit for the window and snapshot.
	scaleFlag = flag.Float64("scale", 1.0, "window and snapshot scale factor")
)
