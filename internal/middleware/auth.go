package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/httpx"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminAuth сверяет общий секрет из заголовка X-Admin-Password.
// Сравнение константно по времени; при несовпадении до данных дело не доходит.
func AdminAuth(password string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(adminPasswordHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
				httpx.WriteError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
