package handler

import (
	"net/http"
	"time"

	"github.com/sueun-dev/university-church-in-maryland/internal/app/db"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/files"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/req"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

// downloadLinkTTL is how long a presigned download URL stays usable.
const downloadLinkTTL = 5 * time.Minute

type fileItem struct {
	ID         int32     `json:"id"`
	Filename   string    `json:"filename"`
	UploadDate time.Time `json:"upload_date"`
	IsNew      bool      `json:"is_new"`
}

// HandleListFiles returns the shared resource files, newest first, flagging
// recent uploads.
func HandleListFiles(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := deps.Store.ListFiles(r.Context())
		if err != nil {
			logx.Error(err, "files: list failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		now := time.Now()
		items := make([]fileItem, 0, len(records))
		for _, rec := range records {
			items = append(items, fileItem{
				ID:         rec.ID,
				Filename:   rec.Filename,
				UploadDate: rec.UploadDate,
				IsNew:      files.IsNew(rec.UploadDate, now),
			})
		}

		resp.RespondSuccess(w, r, map[string]any{"files": items})
	}
}

// HandleUploadFile accepts a multipart upload, validates the extension,
// stores the object and records the file.
func HandleUploadFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if customErr := req.SetupMultipart(w, r, deps.Config.MaxUploadBytes()); customErr != nil {
			if customErr.Code == errs.ErrRequestEntityTooLarge {
				resp.RespondError(w, r, errs.NewError(errs.ErrFileSizeTooLarge))
				return
			}
			resp.RespondError(w, r, customErr)
			return
		}

		file, header, err := r.FormFile("file_input")
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileMissing))
			return
		}
		defer file.Close()

		if !files.AllowedFile(header.Filename) {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileTypeNotAllowed))
			return
		}

		objectKey, err := files.ObjectKey(header.Filename)
		if err != nil {
			logx.Error(err, "files: object key generation failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if err := deps.Storage.Upload(r.Context(), objectKey, files.ContentType(header.Filename), file); err != nil {
			logx.Error(err, "files: object upload failed", "object_key", objectKey)
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		record, err := deps.Store.CreateFile(r.Context(), header.Filename, objectKey)
		if err != nil {
			logx.Error(err, "files: insert failed", "object_key", objectKey)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("file uploaded", "id", record.ID, "filename", record.Filename)

		resp.RespondSuccess(w, r, fileItem{
			ID:         record.ID,
			Filename:   record.Filename,
			UploadDate: record.UploadDate,
			IsNew:      true,
		})
	}
}

// HandleDownloadFile redirects to a short-lived presigned URL for the object.
func HandleDownloadFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.GetFile(r.Context(), id)
		if err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrFileNotFound))
				return
			}
			logx.Error(err, "files: lookup failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		url, err := deps.Storage.PresignDownload(r.Context(), record.DiskFilename, downloadLinkTTL)
		if err != nil {
			logx.Error(err, "files: presign failed", "object_key", record.DiskFilename)
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}

// HandleDeleteFile removes the object and its record.
func HandleDeleteFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		record, err := deps.Store.GetFile(r.Context(), id)
		if err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrFileNotFound))
				return
			}
			logx.Error(err, "files: lookup failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if err := deps.Storage.Delete(r.Context(), record.DiskFilename); err != nil {
			logx.Error(err, "files: object delete failed", "object_key", record.DiskFilename)
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		if err := deps.Store.DeleteFile(r.Context(), id); err != nil {
			logx.Error(err, "files: record delete failed", "id", id)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("file deleted", "id", id, "filename", record.Filename)

		resp.RespondSuccess(w, r, nil)
	}
}
