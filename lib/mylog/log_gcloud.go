package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MarcGrol/ndaonboarding/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGloudLogger
		// Cloud Logging parses one JSON object per line and adds its own timestamp.
		zerolog.LevelFieldName = "severity"
		zerolog.MessageFieldName = "message"
		zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
			return gcloudSeverity(l)
		}
	}
}

type structuredLogger struct {
	componentName string
	logger        zerolog.Logger
}

func newGloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
		logger:        zerolog.New(os.Stdout).With().Str("component", componentName).Logger(),
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...interface{}) {
	event := l.logger.WithLevel(severity.level()).
		Dict("logging.googleapis.com/labels", zerolog.Dict().Str("aggregate", traceLabel))
	if trace, ok := ctx.Value(mycontext.CtxTraceContext{}).(string); ok && trace != "" {
		event = event.Str("logging.googleapis.com/trace", trace)
	}
	event.Msg(l.componentName + ":" + fmt.Sprintf(format, a...))
}

func gcloudSeverity(l zerolog.Level) string {
	switch l {
	case zerolog.DebugLevel:
		return string(SeverityDebug)
	case zerolog.WarnLevel:
		return "WARNING"
	case zerolog.ErrorLevel:
		return string(SeverityError)
	default:
		return string(SeverityInfo)
	}
}
