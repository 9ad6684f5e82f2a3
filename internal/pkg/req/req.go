/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates strict JSON binding and multipart form setup with size limits,
mapping parse failures onto the application error codes.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
)

// MaxFormMemory is the memory ceiling for non-file multipart fields; larger
// file parts spill to temporary files.
const MaxFormMemory int64 = 32 << 20 // 32 MB

// BindJSON binds the JSON request body to dst, rejecting unknown fields and
// trailing content.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// SetupMultipart caps the request body at maxBytes and parses the multipart
// form. Oversized bodies map to ErrRequestEntityTooLarge.
func SetupMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}

		return errs.NewError(errs.ErrFormParseFailed)
	}

	return nil
}
