package utils

import (
	"context"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func GenerateTraceId() string {
	return uuid.New().String()
}

// ExtractServiceName returns the service name used in log fields, taken from
// the SERVICE_NAME environment variable with a sensible default.
func ExtractServiceName() string {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "routemarket"
	}
	return service
}

func LogEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	case "panic":
		entry.Panic(message)
	default:
		entry.Info(message)
	}
}

func LogMessage(level, message string) {
	entry := log.WithFields(log.Fields{
		"service": ExtractServiceName(),
	})

	LogEntry(entry, level, message)
}

func LogMessageWithFields(ctx context.Context, level, message string) {
	entry := log.WithFields(log.Fields{
		"traceId": traceIdFromContext(ctx),
		"service": ExtractServiceName(),
	})

	LogEntry(entry, level, message)
}

func LogMessageWithFieldsAndError(ctx context.Context, level, message string, err error) {
	entry := log.WithFields(log.Fields{
		"traceId": traceIdFromContext(ctx),
		"service": ExtractServiceName(),
		"error":   err,
	})

	LogEntry(entry, level, message)
}

func traceIdFromContext(ctx context.Context) string {
	if traceId, ok := ctx.Value(TraceIdKey.String()).(string); ok {
		return traceId
	}
	return ""
}
