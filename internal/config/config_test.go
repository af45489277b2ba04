package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gpiochip0", cfg.GPIO.Chip)
	assert.Equal(t, 5, cfg.GPIO.ButtonA)
	assert.Equal(t, 6, cfg.GPIO.ButtonB)
	assert.Equal(t, 13, cfg.GPIO.StatusLED)
	assert.Equal(t, "", cfg.Display.SPIPort)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *Config
		wantErr bool
	}{
		{
			name: "full",
			body: `{"gpio": {"chip": "gpiochip4", "button_a": 17, "button_b": 27, "status_led": 22},
				"display": {"spi_port": "/dev/spidev0.0", "serpentine": true}}`,
			want: &Config{
				GPIO:    GPIOConfig{Chip: "gpiochip4", ButtonA: 17, ButtonB: 27, StatusLED: 22},
				Display: DisplayConfig{SPIPort: "/dev/spidev0.0", Serpentine: true},
			},
		},
		{
			name: "partial keeps defaults",
			body: `{"gpio": {"button_b": 26}}`,
			want: &Config{
				GPIO: GPIOConfig{Chip: "gpiochip0", ButtonA: 5, ButtonB: 26, StatusLED: 13},
			},
		},
		{
			name:    "duplicate offsets",
			body:    `{"gpio": {"button_a": 6}}`,
			wantErr: true,
		},
		{
			name:    "negative offset",
			body:    `{"gpio": {"status_led": -1}}`,
			wantErr: true,
		},
		{
			name:    "empty chip",
			body:    `{"gpio": {"chip": ""}}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			body:    `{"brightness": 12}`,
			wantErr: true,
		},
		{
			name:    "malformed",
			body:    `{"gpio":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
