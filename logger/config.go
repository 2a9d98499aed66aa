package logger

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of Options. Absent fields keep their defaults.
//
//	colour: true
//	timeStamp: true
//	prefix: true
//	logLevel: info
type fileConfig struct {
	Colour    *bool   `yaml:"colour"`
	TimeStamp *bool   `yaml:"timeStamp"`
	Prefix    *bool   `yaml:"prefix"`
	LogLevel  *string `yaml:"logLevel"`
}

func readConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logger config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse logger config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *fileConfig) level() (Level, bool, error) {
	if c.LogLevel == nil {
		return 0, false, nil
	}
	level, err := ParseLevel(*c.LogLevel)
	if err != nil {
		return 0, false, err
	}
	if !level.IsThreshold() {
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidLevel, level)
	}
	return level, true, nil
}

// LoadConfig reads logger options from a YAML file. The result can be passed
// straight to New or GetLogger.
func LoadConfig(path string) ([]Option, error) {
	cfg, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	var opts []Option
	if cfg.Colour != nil {
		opts = append(opts, WithColour(*cfg.Colour))
	}
	if cfg.TimeStamp != nil {
		opts = append(opts, WithTimeStamp(*cfg.TimeStamp))
	}
	if cfg.Prefix != nil {
		opts = append(opts, WithPrefix(*cfg.Prefix))
	}
	level, ok, err := cfg.level()
	if err != nil {
		return nil, fmt.Errorf("logger config %s: %w", path, err)
	}
	if ok {
		opts = append(opts, WithLevel(level))
	}
	return opts, nil
}

// ReloadLevel applies the logLevel found in a YAML config file. Other fields
// are ignored because decoration is fixed once a logger is built. A file
// without logLevel leaves the threshold unchanged.
//
// Processes sharing one file can propagate a level change this way.
func (l *Logger) ReloadLevel(path string) error {
	cfg, err := readConfig(path)
	if err != nil {
		return err
	}
	level, ok, err := cfg.level()
	if err != nil {
		return fmt.Errorf("logger config %s: %w", path, err)
	}
	if !ok {
		return nil
	}
	return l.SetLevel(level)
}
