package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		config, err := NewConfig(Config{DirPath: "./records"})
		require.NoError(t, err)
		assert.Equal(t, "./records", config.DirPath)
	})

	t.Run("missing dir path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		assert.Error(t, err)
	})
}

func TestConfigDirResolution(t *testing.T) {
	t.Run("output defaults to input", func(t *testing.T) {
		c := &Config{DirPath: "./records"}
		assert.Equal(t, "./records", c.outputDir())
	})

	t.Run("explicit output", func(t *testing.T) {
		c := &Config{DirPath: "./records", OutputPath: "./out"}
		assert.Equal(t, "./out", c.outputDir())
	})

	t.Run("notebook defaults to output", func(t *testing.T) {
		c := &Config{DirPath: "./records", OutputPath: "./out"}
		assert.Equal(t, "./out", c.notebookDir())
	})

	t.Run("explicit notebook dir", func(t *testing.T) {
		c := &Config{DirPath: "./records", NotebookDir: "./nb"}
		assert.Equal(t, "./nb", c.notebookDir())
	})
}
