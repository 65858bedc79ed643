// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"github.com/anharfhdn/portfolio/internal/auth"
)

// WalletHeader carries the connected wallet address on admin requests.
// The value is client-supplied and compared against the allow-list; it
// gates what the admin UI can reach, not what a determined caller can
// forge. Real access control would verify a signature server-side.
const WalletHeader = "X-Wallet-Address"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const walletKey contextKey = "wallet"

// LoadWallet stores the caller's wallet address, if any, in the request
// context. It does NOT enforce the allow-list — downstream handlers and
// RequireAdmin decide that.
func LoadWallet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if addr := r.Header.Get(WalletHeader); addr != "" {
			r = r.WithContext(context.WithValue(r.Context(), walletKey, addr))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose wallet address is not on the
// allow-list. Must be applied after LoadWallet.
func RequireAdmin(allowList []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.IsAuthorized(WalletFromCtx(r.Context()), allowList) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WalletFromCtx extracts the wallet address from the request context.
// Returns "" if the request carried none.
func WalletFromCtx(ctx context.Context) string {
	addr, _ := ctx.Value(walletKey).(string)
	return addr
}
