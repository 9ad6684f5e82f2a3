/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart or URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate exceeded the configured limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Site Content Business Logic Errors
const (
	// ErrPostNotFound indicates that the requested board post does not exist.
	ErrPostNotFound = 2101

	// ErrMessageNotFound indicates that the requested inbox message does not exist.
	ErrMessageNotFound = 2201

	// ErrZoomLinkNotFound indicates that the requested zoom link does not exist.
	ErrZoomLinkNotFound = 2301

	// ErrContentKeyUnknown indicates an edit for a content key missing from the site schema.
	ErrContentKeyUnknown = 2401

	// ErrFileNotFound indicates that the requested shared file does not exist.
	ErrFileNotFound = 2501

	// ErrFileTypeNotAllowed indicates an upload with an extension outside the allowed set.
	ErrFileTypeNotAllowed = 2502

	// ErrFileSizeTooLarge indicates an upload larger than the configured limit.
	ErrFileSizeTooLarge = 2503

	// ErrFileMissing indicates a multipart upload without a file part.
	ErrFileMissing = 2504

	// ErrFileStorageFailed indicates that the object storage operation failed.
	ErrFileStorageFailed = 2505
)

// 3xxx: Authentication and Security Errors
const (
	// ErrUnauthorized indicates a request to an admin endpoint without a valid session.
	ErrUnauthorized = 3001

	// ErrInvalidCredentials indicates a failed admin login attempt.
	ErrInvalidCredentials = 3002

	// ErrLoginBlocked indicates the IP is blocked after too many failed login attempts.
	ErrLoginBlocked = 3003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000
)
