package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/report"
)

// Keys shared by flags, config file and MATBENCH_* environment variables.
const (
	keyOut      = "out"
	keySeed     = "seed"
	keyEpsilon  = "epsilon"
	keyMetric   = "metric"
	keyClear    = "clear"
	keyLogLevel = "log_level"
)

// settings is everything a command needs after flags, file and environment
// have been merged.
type settings struct {
	cfg    bench.Config
	out    string
	metric report.Metric
	clear  bool
	logger *slog.Logger
}

// newViper returns a viper instance seeded with bench.DefaultConfig and
// reading MATBENCH_* environment variables. Every sweep key gets a default so
// that AutomaticEnv also reaches it during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("MATBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	def := bench.DefaultConfig()
	v.SetDefault("sizes", def.Sizes)
	v.SetDefault("threads", def.Threads)
	v.SetDefault("chunks", def.Chunks)
	v.SetDefault("blocks", def.Blocks)
	v.SetDefault("scaling_threads", def.ScalingThreads)
	v.SetDefault("min", def.Min)
	v.SetDefault("max", def.Max)
	v.SetDefault("fill_workers", def.FillWorkers)
	v.SetDefault(keySeed, def.Seed)
	v.SetDefault(keyEpsilon, def.Epsilon)
	v.SetDefault(keyOut, "data")
	v.SetDefault(keyMetric, report.MetricSpeedup.String())
	v.SetDefault(keyLogLevel, "info")
	return v
}

// bindFlags binds the persistent flags to their viper keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		keyOut:      "out",
		keySeed:     "seed",
		keyEpsilon:  "epsilon",
		keyMetric:   "metric",
		keyClear:    "clear",
		keyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}

// load reads the optional config file and decodes the merged settings.
func load(v *viper.Viper, configFile string, stderr io.Writer) (settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("config %s: %w", configFile, err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s.cfg); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.cfg.Validate(); err != nil {
		return settings{}, err
	}

	metric, err := report.ParseMetric(v.GetString(keyMetric))
	if err != nil {
		return settings{}, err
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return settings{}, fmt.Errorf("log level: %w", err)
	}

	s.out = v.GetString(keyOut)
	s.metric = metric
	s.clear = v.GetBool(keyClear)
	s.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return s, nil
}
