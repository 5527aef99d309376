package logger

import (
	"testing"

	"github.com/MikeRez0/ypdiscount/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.App
		level   zapcore.Level
		wantErr bool
	}{
		{name: "develop debug", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}, level: zapcore.DebugLevel},
		{name: "production error", conf: config.App{LogLevel: "error", Mode: config.AppModeProduction}, level: zapcore.ErrorLevel},
		{name: "bad level", conf: config.App{LogLevel: "loud", Mode: config.AppModeDevelop}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log, err := NewLogger(&test.conf)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(test.level))
			assert.False(t, log.Core().Enabled(test.level-1))
		})
	}
}
