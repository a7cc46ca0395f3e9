// Package config loads and validates calyx.toml, the project configuration
// file for Calyx applications and the calyx CLI.
package config
