package utils

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLogging_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	InitLogging("debug", false)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	InitLogging("not-a-level", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	InitLogging("", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
