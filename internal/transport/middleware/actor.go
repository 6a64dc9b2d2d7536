package middleware

import (
	"net/http"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/pkg/ctxutil"
)

// ActorID propagates the upstream-supplied actor identifier into the request
// context. The surrounding application authenticates its users; this service
// only receives the resulting identity and attaches it to logs and captures.
// Requests without the header proceed with no actor set.
func ActorID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if actor := r.Header.Get("X-Actor-Id"); actor != "" {
			ctx = ctxutil.WithActorID(ctx, actor)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
