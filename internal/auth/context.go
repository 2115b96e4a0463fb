package auth

import (
	"context"

	"github.com/Abhinav6284/Planora/internal/model"
)

type ctxKey string

const userContextKey ctxKey = "planora.auth.user"

func withUserContext(ctx context.Context, u model.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

func UserFromContext(ctx context.Context) (model.User, bool) {
	u, ok := ctx.Value(userContextKey).(model.User)
	return u, ok
}
