package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_LogLevelPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verbose       bool
		quiet         bool
		expectedLevel zerolog.Level
	}{
		{"default is info level", false, false, zerolog.InfoLevel},
		{"verbose enables debug level", true, false, zerolog.DebugLevel},
		{"quiet enables warn level", false, true, zerolog.WarnLevel},
		{"verbose takes precedence over quiet", true, true, zerolog.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := InitLogger(tc.verbose, tc.quiet, &buf)
			assert.Equal(t, tc.expectedLevel, logger.GetLevel())
		})
	}
}

func TestInitLogger_JSONToNonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := InitLogger(true, false, &buf)
	logger.Debug().Str("op", "encrypt").Msg("payload sealed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "encrypt", entry["op"])
	assert.Equal(t, "payload sealed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestInitLogger_QuietDropsInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := InitLogger(false, true, &buf)
	logger.Info().Msg("hidden")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSelectOutput_PassesThroughNonFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Same(t, &buf, selectOutput(&buf))
}
