package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeviceType(t *testing.T) {
	assert.Equal(t, "mobile", parseDeviceType("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)"))
	assert.Equal(t, "mobile", parseDeviceType("Mozilla/5.0 (Linux; Android 14)"))
	assert.Equal(t, "tablet", parseDeviceType("Mozilla/5.0 (iPad; CPU OS 17_0)"))
	assert.Equal(t, "desktop", parseDeviceType("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
	assert.Equal(t, "desktop", parseDeviceType(""))
}

func TestParseBrowser(t *testing.T) {
	assert.Equal(t, "edge", parseBrowser("Mozilla/5.0 Chrome/120.0 Safari/537.36 Edg/120.0"))
	assert.Equal(t, "chrome", parseBrowser("Mozilla/5.0 Chrome/120.0 Safari/537.36"))
	assert.Equal(t, "safari", parseBrowser("Mozilla/5.0 Version/17.0 Safari/605.1.15"))
	assert.Equal(t, "firefox", parseBrowser("Mozilla/5.0 Gecko/20100101 Firefox/121.0"))
	assert.Equal(t, "other", parseBrowser("curl/8.4.0"))
}
