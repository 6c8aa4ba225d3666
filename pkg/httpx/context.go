package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUsername ctxKey = "username"
)

// Identity is the authenticated principal of a request.
type Identity struct {
	UserID   string
	Username string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	ctx = context.WithValue(ctx, CtxKeyUsername, id.Username)
	return ctx
}

// IdentityFromContext returns the identity placed by SessionMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	username, _ := ctx.Value(CtxKeyUsername).(string)
	return Identity{UserID: userID, Username: username}, true
}
