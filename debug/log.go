package debug

import (
	"fmt"
	"os"
	"sync"

	"github.com/matthewpi/dcl/ir"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerOnce sync.Once
	logger     *zap.Logger
)

// Logger returns the process wide logger: a development logger writing to
// stderr when any DCL_DEBUG variable is set, a no-op logger otherwise.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if !(d.Any || d.Parse || d.Set || d.Save || d.Watch) {
			logger = zap.NewNop()
			return
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "dcl: debug logger: %v\n", err)
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// Value is a zap field rendering v the way the debug dump does.
func Value(key string, v *ir.Value) zap.Field {
	if v == nil {
		return zap.Skip()
	}
	return zap.Dict(key,
		zap.Stringer("kind", v.Kind),
		zap.String("text", v.Text()),
		zap.Int("line", v.Line),
		zap.Bool("dirty", v.Dirty),
	)
}
