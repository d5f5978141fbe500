package config

import (
	// stdlib
	"fmt"
	"os"

	// external
	"github.com/pelletier/go-toml/v2"
)

// Enum types

type LoggingLevel string

const (
	LoggingLevelDebug = "debug"
	LoggingLevelInfo  = "info"
	LoggingLevelWarn  = "warn"
	LoggingLevelError = "error"
)

// Config file structure

type ConfigFile struct {
	Heap    HeapConfig
	Shell   ShellConfig
	Logging LoggingConfig
}

type HeapConfig struct {
	BranchingFactor int `toml:"branching_factor"`
	Capacity        int
}

type ShellConfig struct {
	HistorySize int `toml:"history_size"`
}

type LoggingConfig struct {
	Level string
}

func Default() *ConfigFile {
	return &ConfigFile{
		Heap: HeapConfig{
			BranchingFactor: 2,
			Capacity:        1000,
		},
		Shell: ShellConfig{
			HistorySize: 10,
		},
		Logging: LoggingConfig{
			Level: LoggingLevelInfo,
		},
	}
}

func Unmarshal(file_path string) (*ConfigFile, error) {
	config_file := new(ConfigFile)
	data, err := os.ReadFile(file_path)
	if err != nil {
		return nil,
			fmt.Errorf("Unable to read %s error: %w", file_path, err)
	}
	err = toml.Unmarshal(data, config_file)
	if err != nil {
		return nil,
			fmt.Errorf("Unable to unmarshal %s error: %w", file_path, err)
	}
	return config_file, nil
}

func CreateDefault(file_path string) error {
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("Unable to marshal default config error: %w", err)
	}
	err = os.WriteFile(file_path, data, 0644)
	if err != nil {
		return fmt.Errorf("Unable to write %s error: %w", file_path, err)
	}
	return nil
}
