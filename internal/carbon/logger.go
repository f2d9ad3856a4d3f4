package carbon

import "github.com/rs/zerolog"

// logger is used for diagnostics while parsing embedded data.
// It discards everything until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger injects the logger used for material table parsing errors.
// Call it once during startup, before the first lookup; it is not safe to
// call while lookups are running on other goroutines.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "carbon").Logger()
}
