package role

import "context"

type roleCtxKey struct{}

// SetRoleToContext stores the role in the context for downstream access.
func SetRoleToContext(ctx context.Context, r Role) context.Context {
	return context.WithValue(ctx, roleCtxKey{}, r)
}

// GetRoleFromContext retrieves the role from the context, if present.
func GetRoleFromContext(ctx context.Context) (Role, bool) {
	r, ok := ctx.Value(roleCtxKey{}).(Role)
	return r, ok
}
