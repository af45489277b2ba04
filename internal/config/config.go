package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GPIOConfig names the character device and line offsets in use
type GPIOConfig struct {
	Chip      string `json:"chip"`
	ButtonA   int    `json:"button_a"`
	ButtonB   int    `json:"button_b"`
	StatusLED int    `json:"status_led"`
}

// DisplayConfig describes how the LED chain is attached
type DisplayConfig struct {
	// SPIPort is the periph SPI port name, "" for the first available
	SPIPort string `json:"spi_port"`
	// Serpentine is set when odd rows are wired right to left
	Serpentine bool `json:"serpentine"`
}

// Config represents the application configuration
type Config struct {
	GPIO    GPIOConfig    `json:"gpio"`
	Display DisplayConfig `json:"display"`
}

// LoadConfig loads the configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		GPIO: GPIOConfig{
			Chip:      "gpiochip0",
			ButtonA:   5,
			ButtonB:   6,
			StatusLED: 13,
		},
	}
}

// Validate checks that every line is set and no line is used twice
func (c *Config) Validate() error {
	if c.GPIO.Chip == "" {
		return fmt.Errorf("gpio chip must be set")
	}

	lines := []struct {
		name   string
		offset int
	}{
		{"button_a", c.GPIO.ButtonA},
		{"button_b", c.GPIO.ButtonB},
		{"status_led", c.GPIO.StatusLED},
	}

	used := make(map[int]string, len(lines))
	for _, l := range lines {
		if l.offset < 0 {
			return fmt.Errorf("%s offset %d is negative", l.name, l.offset)
		}
		if other, ok := used[l.offset]; ok {
			return fmt.Errorf("%s and %s share offset %d", other, l.name, l.offset)
		}
		used[l.offset] = l.name
	}

	return nil
}
