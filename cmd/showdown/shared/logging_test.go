package shared

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.InfoLevel, SetupLogger(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetupLogger(true).GetLevel())
}
