package config

import "flag"

// Flags are command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config  string
	Debug   bool
	Shape   string
	Scale   float64
	Hz      int
	Overlay bool
	Wrap    bool
}

// Register adds the override flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file.")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging and the overlay.")
	fs.StringVar(&f.Shape, "shape", "", "Shape: cube, tetrahedron or octahedron.")
	fs.Float64Var(&f.Scale, "scale", 0, "Scale factor (0 = from config).")
	fs.IntVar(&f.Hz, "hz", 0, "Frames per second (0 = from config).")
	fs.BoolVar(&f.Overlay, "overlay", false, "Draw the status overlay.")
	fs.BoolVar(&f.Wrap, "wrap", false, "Wrap rotation angles to [0, 2π).")
}

// Apply copies the set overrides into cfg.
func (f *Flags) Apply(cfg *Config) {
	if f == nil || cfg == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Render.Overlay = true
	}
	if f.Shape != "" {
		cfg.Render.Shape = f.Shape
	}
	if f.Scale > 0 {
		cfg.Render.Scale = f.Scale
	}
	if f.Hz > 0 {
		cfg.Render.Hz = f.Hz
	}
	if f.Overlay {
		cfg.Render.Overlay = true
	}
	if f.Wrap {
		cfg.Render.Angles = "wrap"
	}
}
