package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule  int
	Rows  int
	Scale int
	TPS   int
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: 30, Rows: 128, Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram code in [0, 255]")
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of generations to compute")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations revealed per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random-rule key")
}
