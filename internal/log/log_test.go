package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, Level(true).Level())
	assert.Equal(t, zapcore.WarnLevel, Level(false).Level())
}

func TestInitLog(t *testing.T) {
	logger := InitLog(Level(false))
	assert.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
