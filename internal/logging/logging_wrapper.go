package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a LogData-aware handler into an http.HandlerFunc,
// creating a fresh LogData per request and logging start/complete/error.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		req = req.WithContext(NewContext(req.Context(), logData))

		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		defer endTimer()
		err := handler(w, req, logData)
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
