// Package config loads and validates handlescout configuration.
//
// Configuration is resolved by Viper from three sources, in order of
// precedence: an explicit --config path, environment variables with the
// HANDLESCOUT_ prefix, and config.yaml in the handlescout config
// directory. All knobs have built-in defaults, so no config file is
// required for normal use.
package config
