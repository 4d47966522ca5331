package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(Options{Production: true, Level: "debug", Filename: file})
	require.NoError(t, err)

	logger.Info("catalog ready")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog ready")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}
