package runtime

import "github.com/rs/zerolog/log"

// DevMode enables development-time diagnostics: target-resolution warnings,
// hydration mismatch reports, and the config deprecation interceptors.
var DevMode = false

// CompatMode additionally enables legacy-syntax diagnostics, such as the
// in-DOM legacy directive-prefix scan during template adoption.
var CompatMode = false

// WarnFunc is the diagnostics channel: a synchronous, non-fatal sink.
// Warnings are advisory and never abort execution.
type WarnFunc func(format string, args ...any)

// defaultWarn routes diagnostics through the global zerolog logger.
func defaultWarn(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}
