// Package config provides configuration management for emcodec.
//
// The configuration is a small YAML file naming the timezones used to
// convert device timestamps, the log level, and optionally an obfuscated
// station password.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/emcodec/config.yaml or $HOME/.config/emcodec/config.yaml
//   - macOS: $HOME/.config/emcodec/config.yaml
//   - Windows: %LOCALAPPDATA%\emcodec\config.yaml
//
// # File Format
//
//	version: 1
//	local_timezone: Europe/Amsterdam
//	device_timezone: Asia/Shanghai
//	log_level: info
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv, err := cfg.Converter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	codec := protocol.NewCodec(conv)
package config
