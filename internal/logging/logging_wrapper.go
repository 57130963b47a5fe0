package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a plain handler that reports its own failure into an
// http.HandlerFunc. Each request gets its own LogData.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware is the huma counterpart of LoggingWrapper. Handlers reach the
// request's LogData through GetLogData.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "Unknown"
		if op := ctx.Operation(); op != nil {
			loggingName = op.OperationID
		}
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
