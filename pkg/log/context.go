package log

import "context"

type fieldsKey struct{}

// WithFields returns a copy of ctx carrying key/value pairs that every log
// line written with that context will include.
func WithFields(ctx context.Context, kv ...any) context.Context {
	if len(kv) == 0 {
		return ctx
	}
	existing := fieldsFrom(ctx)
	fields := make([]any, 0, len(existing)+len(kv))
	fields = append(fields, existing...)
	fields = append(fields, kv...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}
