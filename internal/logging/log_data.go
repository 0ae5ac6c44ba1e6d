package logging

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// LogData accumulates timings and structured fields across a single request.
// One instance is created per request and carried through the handler chain
// via the request context.
type LogData struct {
	requestID string

	mutex     *sync.Mutex
	timeItems map[string]int64
	dataItems map[string]interface{}
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	requestID := ""
	if id, err := uuid.NewV4(); err == nil {
		requestID = id.String()
	}

	return &LogData{
		requestID: requestID,
		mutex:     &sync.Mutex{},
		timeItems: make(map[string]int64),
		dataItems: make(map[string]interface{}),
		logger:    logger,
	}
}

// AddTiming starts a timer for entryName; the returned func stops it and
// records the elapsed milliseconds.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.mutex.Lock()
		defer l.mutex.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	if l.requestID != "" {
		entry = entry.WithField("requestID", l.requestID)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}

	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}

	return entry
}
