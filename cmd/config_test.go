package cmd

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "linkdup", configBaseName)
	assert.Equal(t, "linkdup.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "run.min_size", runMinSizeKey)
	assert.Equal(t, "run.max_size", runMaxSizeKey)
	assert.Equal(t, "run.parallel", runParallelKey)
	assert.Equal(t, int64(4096), defaultMinSize)
	assert.Equal(t, int64(math.MaxInt64), defaultMaxSize)
	assert.Equal(t, "max", defaultMerge)
	assert.Equal(t, "order", defaultMtime)
	assert.Equal(t, "blake3", defaultDigest)
	assert.Equal(t, "none", defaultIndexHash)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "LINKDUP", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
