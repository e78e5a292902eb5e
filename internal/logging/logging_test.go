package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/config"
)

func TestSetupLevels(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	log := logrus.New()
	log.SetOutput(io.Discard)

	c := config.Default()
	require.NoError(t, Setup(log, c))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	c.Mode = "development"
	require.NoError(t, Setup(log, c))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestSetupLogFile(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	var stderr bytes.Buffer
	log := logrus.New()
	log.SetOutput(&stderr)

	c := config.Default()
	c.Log.File = filepath.Join(t.TempDir(), "minesweeper.log")
	require.NoError(t, Setup(log, c))

	log.WithField("game", "test").Info("board created")
	log.Debug("not at info level")

	data, err := os.ReadFile(c.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"board created"`)
	assert.Contains(t, string(data), `"game":"test"`)
	assert.NotContains(t, string(data), "not at info level")
	assert.Contains(t, stderr.String(), "board created")
}
