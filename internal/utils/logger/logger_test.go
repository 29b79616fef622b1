package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelForEnvironment(t *testing.T) {
	tests := map[string]zerolog.Level{
		"dev":     zerolog.TraceLevel,
		"TEST":    zerolog.TraceLevel,
		"prod":    zerolog.InfoLevel,
		"staging": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}

	for env, want := range tests {
		assert.Equal(t, want, LevelForEnvironment(env), env)
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name               string
		environment        string
		debug, trace, info bool
		want               zerolog.Level
	}{
		{"environment default", "dev", false, false, false, zerolog.TraceLevel},
		{"prod default", "prod", false, false, false, zerolog.InfoLevel},
		{"debug flag wins", "prod", true, true, false, zerolog.DebugLevel},
		{"trace flag", "prod", false, true, false, zerolog.TraceLevel},
		{"info flag", "dev", false, false, true, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveLevel(tt.environment, tt.debug, tt.trace, tt.info))
		})
	}
}
