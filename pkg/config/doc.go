// Package config handles configuration management for bannerkit.
// It layers embedded defaults, an optional TOML file and BANNERKIT_*
// environment variables, in that order.
package config
