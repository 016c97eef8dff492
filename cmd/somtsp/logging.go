package main

import (
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/somtsp/ring"
	"github.com/katalvlaran/somtsp/som"
)

// newLogger builds the stderr logger: logfmt or JSON, stamped with ts and
// caller, filtered at lvl.
func newLogger(w io.Writer, format, lvl string) (log.Logger, error) {
	var logger log.Logger
	{
		switch format {
		case "json":
			logger = log.NewJSONLogger(log.NewSyncWriter(w))
		default:
			logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
		}
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "info", "":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
	return level.NewFilter(logger, allow), nil
}

// checkpointLogger reports training progress. Periodic checkpoints go to
// debug, the first and last to info.
func checkpointLogger(logger log.Logger) som.Observer {
	logger = log.With(logger, "component", "trainer")
	return func(cp som.Checkpoint) {
		perimeter := 0.0
		if r, err := ring.NewFrom(cp.Neurons); err == nil {
			perimeter = r.Perimeter()
		}
		l := level.Debug(logger)
		if cp.Kind != som.Periodic {
			l = level.Info(logger)
		}
		l.Log(
			"checkpoint", cp.Kind,
			"epoch", cp.Epoch,
			"lr", cp.LearningRate,
			"radius", cp.Radius,
			"perimeter", perimeter,
		)
	}
}

// logRun logs one solve the way a service middleware logs a call.
func logRun(logger log.Logger, instance string, cities int, begin time.Time, err error) {
	l := level.Info(logger)
	if err != nil {
		l = level.Error(logger)
	}
	l.Log(
		"method", "solve",
		"instance", instance,
		"cities", cities,
		"err", err,
		"took", time.Since(begin),
	)
}
