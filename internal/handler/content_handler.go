package handler

import (
	"net/http"

	"github.com/sueun-dev/university-church-in-maryland/internal/app/content"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/req"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

// HandleGetContent returns the editable site content sections with stored
// values merged over the schema defaults.
func HandleGetContent(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := deps.Store.GetContentValues(r.Context())
		if err != nil {
			logx.Error(err, "content: load failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"sections": content.Resolve(stored)})
	}
}

// HandleUpdateContent stores new values for a set of content keys. Every key
// must exist in the site schema; an unknown key rejects the whole request
// before anything is written.
func HandleUpdateContent(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values map[string]string
		if customErr := req.BindJSON(r, &values); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if len(values) == 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		for key := range values {
			if _, ok := content.FieldByKey(key); !ok {
				resp.RespondError(w, r, errs.NewError(errs.ErrContentKeyUnknown, key))
				return
			}
		}

		for key, value := range values {
			if err := deps.Store.UpsertContentValue(r.Context(), key, value); err != nil {
				logx.Error(err, "content: upsert failed", "key", key)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
		}

		logx.Info("site content updated", "keys", len(values))

		resp.RespondSuccess(w, r, nil)
	}
}
