package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/auth/jwt"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

// RequireAdmin guards console routes: requests without a valid admin session
// are rejected with 401 before the handler runs.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !jwt.GetPayloadFromContext(r).IsAdmin() {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// idParam parses the {id} URL parameter as the int32 database id.
func idParam(r *http.Request) (int32, *errs.CustomError) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return int32(id), nil
}
