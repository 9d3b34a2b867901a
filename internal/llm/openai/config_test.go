package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepilot/gradepilot/constants"
)

func TestTemperatureFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(0.1), TemperatureFor(constants.StrictnessStrict))
	assert.Equal(t, float32(0.3), TemperatureFor(constants.StrictnessNormal))
	assert.Equal(t, float32(0.7), TemperatureFor(constants.StrictnessLenient))
	// unknown values get the balanced default
	assert.Equal(t, float32(0.3), TemperatureFor(constants.Strictness("WHATEVER")))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key"}, nil)
	assert.Equal(t, "https://api.openai.com/v1", c.cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", c.cfg.Model)
	assert.Greater(t, c.cfg.Timeout.Seconds(), 0.0)
}
