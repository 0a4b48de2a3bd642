package initialize

import (
	"os"

	"github.com/20225587/Tasker/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}

// ApplyLogLevel takes effect immediately; the config watcher calls it on
// reload. The level lives in zerolog's atomic global level rather than
// in the logger itself, so the watcher goroutine never writes
// global.Logger while request goroutines read it.
func ApplyLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		global.Logger.Warn().Str("level", level).Msg("unknown log level, keeping current")
		return
	}
	zerolog.SetGlobalLevel(parsed)
}
