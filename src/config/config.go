package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Notation string

const (
	Prefix  Notation = "prefix"
	Infix   Notation = "infix"
	Postfix Notation = "postfix"
)

var AllNotations = []Notation{Prefix, Infix, Postfix}

const DefaultPrompt = "> "

// Config controls how evaluated expressions are printed.
// Example file:
//
//	notations: [prefix, postfix]
//	show-size: true
//	prompt: "expr> "
type Config struct {
	// Notations lists the renderings printed after the value, in order.
	Notations []Notation `yaml:"notations"`
	ShowSize  bool       `yaml:"show-size"`
	Prompt    string     `yaml:"prompt,omitempty"`

	// Path is where the config was loaded from and where Write writes it.
	Path string `yaml:"-"`
}

// Default returns the config used when no config file exists.
func Default() *Config {
	return &Config{
		Notations: append([]Notation{}, AllNotations...),
		Prompt:    DefaultPrompt,
	}
}

// LoadConfig reads the YAML config at path. Keys that are left out get their
// default values, unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// best effort, it only makes error messages easier to follow
		absPath = path
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", absPath, err)
	}
	defer file.Close()

	config := &Config{}
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}

	if len(config.Notations) == 0 {
		config.Notations = append([]Notation{}, AllNotations...)
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	for _, notation := range c.Notations {
		if !lo.Contains(AllNotations, notation) {
			return fmt.Errorf("unknown notation '%s', expected one of %v", notation, AllNotations)
		}
	}
	if len(lo.Uniq(c.Notations)) != len(c.Notations) {
		return fmt.Errorf("notations listed more than once: %v", lo.FindDuplicates(c.Notations))
	}
	return nil
}

// Write writes the config as YAML to c.Path.
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path to write to")
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	return nil
}
