package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/sueun-dev/university-church-in-maryland/internal/app/db"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/store"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/req"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

type ZoomLinkInput struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Password string `json:"password"`
}

func (in *ZoomLinkInput) validate() *errs.CustomError {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	in.Password = strings.TrimSpace(in.Password)

	if in.Title == "" || in.URL == "" {
		return errs.NewError(errs.ErrInvalidParams)
	}

	return nil
}

type zoomLinkItem struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toZoomLinkItem(z store.ZoomLink) zoomLinkItem {
	item := zoomLinkItem{
		ID:        z.ID,
		Title:     z.Title,
		URL:       z.URL,
		CreatedAt: z.CreatedAt,
	}
	if z.Password.Valid {
		item.Password = z.Password.String
	}
	return item
}

// HandleListZoomLinks returns the published meeting links.
func HandleListZoomLinks(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := deps.Store.ListZoomLinks(r.Context())
		if err != nil {
			logx.Error(err, "zoomlinks: list failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		items := make([]zoomLinkItem, 0, len(records))
		for _, rec := range records {
			items = append(items, toZoomLinkItem(rec))
		}

		resp.RespondSuccess(w, r, map[string]any{"zoom_links": items})
	}
}

// HandleCreateZoomLink publishes a new meeting link.
func HandleCreateZoomLink(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ZoomLinkInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := input.validate(); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.CreateZoomLink(r.Context(), input.Title, input.URL, input.Password)
		if err != nil {
			logx.Error(err, "zoomlinks: insert failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("zoom link created", "id", record.ID, "title", record.Title)

		resp.RespondSuccess(w, r, toZoomLinkItem(record))
	}
}

// HandleUpdateZoomLink replaces a meeting link's title, URL and password.
func HandleUpdateZoomLink(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input ZoomLinkInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := input.validate(); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.UpdateZoomLink(r.Context(), id, input.Title, input.URL, input.Password)
		if err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrZoomLinkNotFound))
				return
			}
			logx.Error(err, "zoomlinks: update failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, toZoomLinkItem(record))
	}
}

// HandleDeleteZoomLink unpublishes a meeting link.
func HandleDeleteZoomLink(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Store.DeleteZoomLink(r.Context(), id); err != nil {
			logx.Error(err, "zoomlinks: delete failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
