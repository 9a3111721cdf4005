package config

import (
	"fmt"

	"github.com/muurk/emcodec/internal/devicetime"
	"github.com/muurk/emcodec/internal/password"
)

// CurrentVersion is the config file format version this package writes.
const CurrentVersion = 1

// Config represents the emcodec configuration file.
type Config struct {
	Version int `yaml:"version"`

	// LocalTimezone is the IANA zone device timestamps are presented in.
	// Empty means the host's local zone.
	LocalTimezone string `yaml:"local_timezone,omitempty"`
	// DeviceTimezone is the zone the station clock runs in.
	DeviceTimezone string `yaml:"device_timezone"`

	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error; empty is silent

	// StationPassword is stored obfuscated (see package password), never
	// in clear text.
	StationPassword string `yaml:"station_password,omitempty"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:        CurrentVersion,
		DeviceTimezone: devicetime.DefaultDeviceZone,
	}
}

// Validate checks the version and that both timezones resolve.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if _, err := c.Converter(); err != nil {
		return err
	}
	return nil
}

// Converter builds the device timestamp converter for the configured zones.
func (c *Config) Converter() (*devicetime.Converter, error) {
	return devicetime.NewFromNames(c.LocalTimezone, c.DeviceTimezone)
}

// Password returns the decoded station password, or nil if none is set.
func (c *Config) Password() (*string, error) {
	if c.StationPassword == "" {
		return nil, nil
	}
	return password.Decode(&c.StationPassword)
}

// SetPassword stores pw obfuscated. An empty pw clears it.
func (c *Config) SetPassword(pw string) {
	if pw == "" {
		c.StationPassword = ""
		return
	}
	c.StationPassword = *password.Encode(&pw)
}
