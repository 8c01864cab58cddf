package main

import (
	"fmt"
	"io"
	"os"

	"github.com/trailpins/trailpins/internal/config"
	"github.com/trailpins/trailpins/internal/logger"
	"github.com/trailpins/trailpins/internal/pins"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultInput  = "combined_trailheads.csv"
	defaultOutput = "trailheads-ridb.json"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to optional YAML configuration file"`
	Input      string `short:"i" long:"in"     env:"PINS_INPUT"  description:"Input CSV file (default: combined_trailheads.csv)"`
	Output     string `short:"o" long:"out"    env:"PINS_OUTPUT" description:"Output file (default: trailheads-ridb.json)"`
	Format     string `short:"f" long:"format" env:"PINS_FORMAT" description:"Output format (default: json)" choice:"json" choice:"yaml" choice:"geojson"`
	Minify     bool   `short:"m" long:"minify" description:"Write compact JSON instead of indented"`

	Args struct {
		Input  string `positional-arg-name:"INPUT"`
		Output string `positional-arg-name:"OUTPUT"`
	} `positional-args:"yes"`
}

// settings is the resolved invocation after flags, env and config file.
type settings struct {
	Input  string
	Output string
	Format pins.Format
	Minify bool
}

func main() {
	// .env is optional, env-tagged options may come from it
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.LoadOptional(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
	}

	if err := run(resolve(opts, cfg), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

// resolve picks each setting from positional args, then flags or env,
// then the config file, then the built-in defaults.
func resolve(opts Options, cfg *config.Config) settings {
	return settings{
		Input:  first(opts.Args.Input, opts.Input, cfg.Input, defaultInput),
		Output: first(opts.Args.Output, opts.Output, cfg.Output, defaultOutput),
		Format: pins.Format(first(opts.Format, cfg.Format, string(pins.FormatJSON))),
		Minify: opts.Minify || cfg.Minify,
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func run(s settings, stdout io.Writer) error {
	log.Debug().
		Str("input", s.Input).
		Str("output", s.Output).
		Str("format", string(s.Format)).
		Bool("minify", s.Minify).
		Msg("Converting pins")

	res, err := pins.Transform(s.Input, s.Output, pins.Options{
		Format: s.Format,
		Minify: s.Minify,
	})
	if err != nil {
		return err
	}

	log.Debug().
		Int("written", res.Written).
		Int("skipped", res.Skipped).
		Msg("Rows processed")

	_, err = fmt.Fprintln(stdout, res.Summary())
	return err
}
