package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSeed    = flag.Int64("seed", -1, "World seed override (>= 0)")
	flagRadius  = flag.Int("radius", -1, "Chunk load radius override (>= 0)")
	flagThreads = flag.Int("threads", -1, "Generation worker count override (0 = all CPUs)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed >= 0 {
		cfg.World.Seed = uint32(*flagSeed)
	}
	if *flagRadius >= 0 {
		cfg.World.LoadRadius = int32(*flagRadius)
	}
	if *flagThreads >= 0 {
		cfg.World.Threads = *flagThreads
	}
}
