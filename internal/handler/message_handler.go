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

type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type messageItem struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

func toMessageItem(m store.Message) messageItem {
	item := messageItem{
		ID:        m.ID,
		Name:      m.Name,
		Subject:   m.Subject,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		IsRead:    m.IsRead,
	}
	if m.Email.Valid {
		item.Email = m.Email.String
	}
	return item
}

// HandleCreateMessage accepts a contact form submission from the public site.
func HandleCreateMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input MessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Email = strings.TrimSpace(input.Email)
		input.Subject = strings.TrimSpace(input.Subject)
		input.Content = strings.TrimSpace(input.Content)

		if input.Name == "" || input.Subject == "" || input.Content == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		record, err := deps.Store.CreateMessage(r.Context(), input.Name, input.Email, input.Subject, input.Content)
		if err != nil {
			logx.Error(err, "messages: insert failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("contact message received", "id", record.ID)

		resp.RespondSuccess(w, r, toMessageItem(record))
	}
}

// HandleListMessages returns the contact inbox, newest first.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := deps.Store.ListMessages(r.Context())
		if err != nil {
			logx.Error(err, "messages: list failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		items := make([]messageItem, 0, len(records))
		for _, rec := range records {
			items = append(items, toMessageItem(rec))
		}

		resp.RespondSuccess(w, r, map[string]any{"messages": items})
	}
}

// HandleMarkMessageRead flags a message as read.
func HandleMarkMessageRead(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.MarkMessageRead(r.Context(), id)
		if err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrMessageNotFound))
				return
			}
			logx.Error(err, "messages: mark read failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, toMessageItem(record))
	}
}

// HandleDeleteMessage removes a message from the inbox.
func HandleDeleteMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Store.DeleteMessage(r.Context(), id); err != nil {
			logx.Error(err, "messages: delete failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
