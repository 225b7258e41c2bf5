package ctxutil

import "context"

type traceDataKey struct{}

// TraceData identifies the request a piece of work belongs to.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if ctx == nil {
		return nil
	}
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}

// LogFields returns request correlation key/value pairs for structured logs.
func LogFields(ctx context.Context) []interface{} {
	td := GetTraceData(ctx)
	if td == nil {
		return nil
	}
	fields := make([]interface{}, 0, 4)
	if td.RequestID != "" {
		fields = append(fields, "request_id", td.RequestID)
	}
	if td.TraceID != "" {
		fields = append(fields, "trace_id", td.TraceID)
	}
	return fields
}
