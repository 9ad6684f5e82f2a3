/*
Package files holds the validation rules for the shared-resource uploads: the
allowed extension set, display-name versus object-key handling, and the
"recently uploaded" flag shown in the public listing.
*/
package files

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/randx"
)

// NewFileWindow is how long an upload is flagged as new in the listing.
const NewFileWindow = 7 * 24 * time.Hour

// AllowedExtensions is the set of permitted upload extensions, lowercase,
// without the leading dot.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"png":  {},
	"jpeg": {},
	"jpg":  {},
	"gif":  {},
	"bmp":  {},
	"svg":  {},
	"txt":  {},
	"rtf":  {},
	"csv":  {},
	"html": {},
}

// ExtToMIME maps allowed extensions to the Content-Type stored with the object.
var ExtToMIME = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
	"txt":  "text/plain",
	"rtf":  "application/rtf",
	"csv":  "text/csv",
	"html": "text/html",
}

// Ext extracts the lowercase extension of filename without the leading dot.
func Ext(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// AllowedFile reports whether filename carries an allowed extension.
func AllowedFile(filename string) bool {
	if filename == "" {
		return false
	}
	_, ok := AllowedExtensions[Ext(filename)]
	return ok
}

// ContentType returns the Content-Type for an allowed filename, falling back
// to a generic octet stream.
func ContentType(filename string) string {
	if mime, ok := ExtToMIME[Ext(filename)]; ok {
		return mime
	}
	return "application/octet-stream"
}

// SanitizeFilename reduces a display name (Korean allowed) to an ASCII-safe
// object name: path components are stripped, spaces become underscores, and
// anything outside [A-Za-z0-9._-] is dropped. A name with nothing safe left
// falls back to a random stem so the extension is preserved.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	ext := Ext(name)
	stem := name
	if ext != "" {
		stem = name[:len(name)-len(ext)-1]
	}

	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_', r == '-', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	safeStem := strings.Trim(b.String(), "._-")
	if safeStem == "" {
		safeStem = randomStem()
	}

	if ext == "" {
		return safeStem
	}
	return safeStem + "." + ext
}

func randomStem() string {
	stem, err := randx.Base62(12)
	if err != nil {
		// crypto/rand failing is not survivable in general, but a timestamp
		// stem keeps the upload path working.
		return time.Now().UTC().Format("20060102150405")
	}
	return stem
}

// ObjectKey builds the storage key for an upload: a random suffix joined with
// the sanitized name, so equal display names never collide in the bucket.
func ObjectKey(displayName string) (string, error) {
	suffix, err := randx.ObjectSuffix()
	if err != nil {
		return "", err
	}
	return "uploads/" + suffix + "_" + SanitizeFilename(displayName), nil
}

// IsNew reports whether an upload from uploadDate still counts as new at now.
func IsNew(uploadDate, now time.Time) bool {
	return now.Sub(uploadDate) <= NewFileWindow
}
