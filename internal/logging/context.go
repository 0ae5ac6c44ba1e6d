package logging

import "context"

type contextKey struct{}

// NewContext returns a context carrying the given LogData.
func NewContext(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, contextKey{}, logData)
}

// GetLogData returns the LogData carried by ctx, or nil when the request
// was not routed through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(contextKey{}).(*LogData)
	return logData
}
