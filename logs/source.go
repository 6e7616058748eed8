package logs

import "context"

type sourceKey struct{}

// SourceKey is the context key of the name of the source being processed.
var SourceKey sourceKey

func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, SourceKey, name)
}

func SourceOf(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(SourceKey).(string)
	return name, ok
}
