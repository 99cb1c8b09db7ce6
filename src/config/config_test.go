package config

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	helpers_test "github.com/eriklarko/exprtree/src/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Run("valid, existing config", func(t *testing.T) {
		content := `notations: [postfix, prefix]
show-size: true
prompt: "expr> "`
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, []Notation{Postfix, Prefix}, config.Notations)
		assert.True(t, config.ShowSize)
		assert.Equal(t, "expr> ", config.Prompt)
		assert.Equal(t, configFile, config.Path)
	})

	t.Run("missing keys get defaults", func(t *testing.T) {
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", "show-size: true\n")

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, AllNotations, config.Notations)
		assert.Equal(t, DefaultPrompt, config.Prompt)
	})

	t.Run("empty file", func(t *testing.T) {
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", "")

		config, err := LoadConfig(configFile)
		require.NoError(t, err)
		assert.Equal(t, AllNotations, config.Notations)
		assert.False(t, config.ShowSize)
	})

	t.Run("invalid, existing config", func(t *testing.T) {
		content := `foo` // no keys
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", content)

		_, err := LoadConfig(configFile)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", "colour: red\n")

		_, err := LoadConfig(configFile)
		assert.Error(t, err)
	})

	t.Run("unknown notation", func(t *testing.T) {
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", "notations: [prefix, reverse-polish]\n")

		_, err := LoadConfig(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reverse-polish")
	})

	t.Run("duplicate notation", func(t *testing.T) {
		configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", "notations: [infix, infix]\n")

		_, err := LoadConfig(configFile)
		assert.Error(t, err)
	})

	t.Run("non-existing config", func(t *testing.T) {
		_, err := LoadConfig("non-existing.yaml")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestWriteConfig(t *testing.T) {
	configFile := helpers_test.TempFilePath(t, "exprtree.yaml")

	config := &Config{
		Notations: []Notation{Infix},
		ShowSize:  true,
		Prompt:    "? ",

		Path: configFile,
	}

	err := config.Write()
	require.NoError(t, err)

	// Verify file content
	content, err := os.ReadFile(configFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), "show-size: true\n")
	assert.Contains(t, string(content), "- infix\n")
	assert.NotContains(t, string(content), configFile)

	// and that it reads back the same
	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestWriteConfig_NoPath(t *testing.T) {
	err := Default().Write()
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	configFile := helpers_test.WriteTempFile(t, "exprtree.yaml", "show-size: false\n")

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, configFile, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	// the watcher may not be registered when the first write happens, so
	// keep writing until a change comes through
	assert.Eventually(t, func() bool {
		if err := os.WriteFile(configFile, []byte("show-size: true\n"), 0644); err != nil {
			return false
		}

		select {
		case c := <-changes:
			return c.ShowSize
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after the context was cancelled")
	}
}
