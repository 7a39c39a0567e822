// Package gadgetlog provides the process-global structured logger used
// across this module's gadgets, following the same single global
// zerolog.Logger pattern github.com/consensys/gnark itself uses for its
// own logger package.
package gadgetlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// SetOutput redirects all subsequent log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// SetLevel sets the minimum level logged; pass zerolog.Disabled to
// silence this package's logging entirely.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// Logger returns the current global logger.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}

// Allocation logs the allocation of a curve point gadget at the given
// mode.
func Allocation(curve string, mode string) {
	Logger().Debug().Str("curve", curve).Str("mode", mode).Msg("allocating curve point")
}

// ScalarMul logs the entry into a scalar multiplication gadget.
func ScalarMul(curve string, nbBits int) {
	Logger().Debug().Str("curve", curve).Int("nb_bits", nbBits).Msg("scalar multiplication")
}

// SubgroupCheck logs whether a subgroup check was actually emitted for an
// allocation, and why not when it was skipped.
func SubgroupCheck(curve string, emitted bool, reason string) {
	Logger().Debug().Str("curve", curve).Bool("emitted", emitted).Str("reason", reason).Msg("subgroup check")
}
