// Package config provides user configuration for wallie.
//
// Settings come from three layers, later ones winning:
//
//  1. A YAML file (config.yaml) in the platform config directory
//  2. WALLIE_* environment variables
//  3. Command line flags (applied by cmd/wallie)
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/wallie/config.yaml or $HOME/.config/wallie/config.yaml
//   - macOS: $HOME/.config/wallie/config.yaml
//   - Windows: %LOCALAPPDATA%\wallie\config.yaml
//
// # Example
//
//	version: 1
//	countries:
//	  endpoint: https://restcountries.eu/rest/v2/all
//	  flag_base_url: https://www.countryflags.io
//	  default_code: US
//	  timeout: 10s
//	navigation:
//	  destination: Home
//	log:
//	  level: debug
//	  file: /tmp/wallie.log
//
// Form input (names, phone numbers, passwords) is never written anywhere.
package config
