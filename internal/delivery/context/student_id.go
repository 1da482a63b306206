package context

import "context"

// WithStudentID returns a new context carrying the authenticated
// student's ID.
func WithStudentID(ctx context.Context, studentID uint) context.Context {
	return context.WithValue(ctx, KeyStudentID, studentID)
}

// GetStudentID extracts the authenticated student's ID from the context.
func GetStudentID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(KeyStudentID).(uint)

	return id, ok
}
