package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/materializer/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type AWS struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	SessionToken    string `yaml:"sessionToken"`
}

func (a *AWS) String() string {
	// Don't log credentials.
	return fmt.Sprintf("region=%s, key_set=%v, secret_set=%v", a.Region, a.AccessKeyID != "", a.SecretAccessKey != "")
}

type Input struct {
	// Path is either a local file or an S3 URI (s3://bucket/key).
	Path string `yaml:"path"`
	// AWS is _optional_, the default credential chain is used when it is not set.
	AWS *AWS `yaml:"aws"`
}

func (i Input) IsS3() bool {
	return strings.HasPrefix(i.Path, constants.S3Prefix)
}

type Output struct {
	// Path is where the gzipped TSV file will be written to, either a local file or an S3 URI.
	Path string `yaml:"path"`
	// AWS is _optional_, the default credential chain is used when it is not set.
	AWS *AWS `yaml:"aws"`
}

func (o Output) IsS3() bool {
	return strings.HasPrefix(o.Path, constants.S3Prefix)
}

type Config struct {
	Input   Input    `yaml:"input"`
	Output  Output   `yaml:"output"`
	Columns []Column `yaml:"columns"`

	// Parallelism caps how many chunks of a column are materialized at once.
	Parallelism int `yaml:"parallelism"`

	Reporting struct {
		Sentry *Sentry `yaml:"sentry"`
	} `yaml:"reporting"`

	Telemetry struct {
		Metrics struct {
			Provider constants.ExporterKind `yaml:"provider"`
			Settings map[string]any         `yaml:"settings,omitempty"`
		} `yaml:"metrics"`
	} `yaml:"telemetry"`
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	bytes, err := os.ReadFile(pathToConfig)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	if config.Parallelism == 0 {
		config.Parallelism = constants.DefaultParallelism
	}

	for i := range config.Columns {
		if config.Columns[i].Type == "" {
			config.Columns[i].Type = constants.Double
		}
	}

	return &config, nil
}

// Validate will check that the input, output and every column are usable.
// Whether the input actually exists is checked when the job runs.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if c.Input.Path == "" {
		return fmt.Errorf("config is invalid, input path is empty")
	}

	if c.Input.IsS3() && strings.TrimPrefix(c.Input.Path, constants.S3Prefix) == "" {
		return fmt.Errorf("config is invalid, input path: %q is not a valid s3 uri", c.Input.Path)
	}

	if c.Output.Path == "" {
		return fmt.Errorf("config is invalid, output path is empty")
	}

	if c.Output.IsS3() && strings.TrimPrefix(c.Output.Path, constants.S3Prefix) == "" {
		return fmt.Errorf("config is invalid, output path: %q is not a valid s3 uri", c.Output.Path)
	}

	if c.Parallelism < 1 || c.Parallelism > constants.MaxParallelism {
		return fmt.Errorf("config is invalid, parallelism is outside of our range: %d, expected start: 1, end: %d", c.Parallelism, constants.MaxParallelism)
	}

	if len(c.Columns) == 0 {
		return fmt.Errorf("config is invalid, no columns specified")
	}

	seen := make(map[string]bool, len(c.Columns))
	for _, column := range c.Columns {
		if err := column.Validate(); err != nil {
			return fmt.Errorf("config is invalid, column: %q is invalid: %w", column.Name, err)
		}

		if seen[column.Name] {
			return fmt.Errorf("config is invalid, column: %q is specified more than once", column.Name)
		}
		seen[column.Name] = true
	}

	return nil
}
