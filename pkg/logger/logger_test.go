package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWritesJSON(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("route", "/").Msg("request")

	assert.Contains(t, buf.String(), `"route":"/"`)
	assert.Contains(t, buf.String(), `"message":"request"`)
}

func TestGetWithoutInitUsesDefaults(t *testing.T) {
	Reset()
	defer Reset()

	// Must not panic and must be usable.
	log := Get()
	log.Debug().Msg("below default level, discarded")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "info", parseLevel("unknown").String())
}
