package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
)

// Identity is the resolved caller attached to the request context by the
// session middleware. An anonymous request carries no identity.
type Identity struct {
	UserID string
	Email  string
}

// ContextWithIdentity attaches the resolved identity for downstream handlers.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	ctx = context.WithValue(ctx, CtxKeyEmail, id.Email)
	return ctx
}

// IdentityFromContext returns the attached identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	email, _ := ctx.Value(CtxKeyEmail).(string)
	return Identity{UserID: userID, Email: email}, true
}
