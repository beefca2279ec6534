package middleware

import "context"

// subjectCtxKey is the key used to store the authenticated token subject in the request context.
const subjectCtxKey = contextKey("subject")

// GetSubjectFromCtx retrieves the authenticated token subject from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
