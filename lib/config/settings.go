package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type Settings struct {
	Config         Config
	VerboseLogging bool
}

type options struct {
	ConfigFilePath string `short:"c" long:"config" description:"path to the config file"`
	Verbose        bool   `short:"v" long:"verbose" description:"debug logging" optional:"true"`
	Input          string `short:"i" long:"input" description:"overrides input.path, local file or s3://bucket/key"`
	Output         string `short:"o" long:"output" description:"overrides output.path, local file or s3://bucket/key"`
}

// apply copies the path overrides passed on the command line onto [config].
func (o options) apply(config *Config) {
	if o.Input != "" {
		config.Input.Path = o.Input
	}

	if o.Output != "" {
		config.Output.Path = o.Output
	}
}

// LoadSettings will take the flags and then parse, loadConfig is optional for testing purposes.
// Flags take precedence over the config file and are applied before validation.
func LoadSettings(args []string, loadConfig bool) (*Settings, error) {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	settings := &Settings{
		VerboseLogging: opts.Verbose,
	}

	if loadConfig {
		config, err := readFileToConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		opts.apply(config)
		if err = config.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate config: %w", err)
		}

		settings.Config = *config
	}

	return settings, nil
}
