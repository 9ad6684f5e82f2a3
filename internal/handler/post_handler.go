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

type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (in *PostInput) validate() *errs.CustomError {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Category = strings.TrimSpace(in.Category)

	if in.Title == "" || in.Content == "" {
		return errs.NewError(errs.ErrInvalidParams)
	}

	return nil
}

type postItem struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func toPostItem(p store.Post) postItem {
	return postItem{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}

// HandleListPosts returns board posts, optionally filtered by ?category=.
func HandleListPosts(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		records, err := deps.Store.ListPosts(r.Context(), category)
		if err != nil {
			logx.Error(err, "posts: list failed", "category", category)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		items := make([]postItem, 0, len(records))
		for _, rec := range records {
			items = append(items, toPostItem(rec))
		}

		resp.RespondSuccess(w, r, map[string]any{"posts": items})
	}
}

// HandleGetPost returns a single board post.
func HandleGetPost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.GetPost(r.Context(), id)
		if err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrPostNotFound))
				return
			}
			logx.Error(err, "posts: lookup failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, toPostItem(record))
	}
}

// HandleCreatePost creates a board post.
func HandleCreatePost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input PostInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := input.validate(); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.CreatePost(r.Context(), input.Title, input.Content, input.Category)
		if err != nil {
			logx.Error(err, "posts: insert failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("post created", "id", record.ID, "category", record.Category)

		resp.RespondSuccess(w, r, toPostItem(record))
	}
}

// HandleUpdatePost replaces the title, content and category of a post.
func HandleUpdatePost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input PostInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := input.validate(); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.UpdatePost(r.Context(), id, input.Title, input.Content, input.Category)
		if err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrPostNotFound))
				return
			}
			logx.Error(err, "posts: update failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, toPostItem(record))
	}
}

// HandleDeletePost removes a post.
func HandleDeletePost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Store.DeletePost(r.Context(), id); err != nil {
			logx.Error(err, "posts: delete failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
