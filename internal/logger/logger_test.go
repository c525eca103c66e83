package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffold-service/internal/config"
)

func TestInit_CreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	err := Init(config.Log{Level: "debug", Dir: dir, MaxSize: 1})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	require.NoError(t, Init(config.Log{Level: "chatty", Dir: t.TempDir()}))
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}

func TestErrorFileHook(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	l.AddHook(&ErrorFileHook{errorWriter: &buf})

	l.Info("not copied")
	assert.Empty(t, buf.String())

	l.Error("copied")
	assert.Contains(t, buf.String(), "copied")
}
