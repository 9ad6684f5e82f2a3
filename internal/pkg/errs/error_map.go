/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// A zero Status means the error is reported with HTTP 200 and a non-zero
// business code, matching the unified response envelope.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large."},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Site Content Business Logic Errors
	ErrPostNotFound:       {Code: ErrPostNotFound, Message: "Post not found.", Status: http.StatusNotFound},
	ErrMessageNotFound:    {Code: ErrMessageNotFound, Message: "Message not found.", Status: http.StatusNotFound},
	ErrZoomLinkNotFound:   {Code: ErrZoomLinkNotFound, Message: "Zoom link not found.", Status: http.StatusNotFound},
	ErrContentKeyUnknown:  {Code: ErrContentKeyUnknown, Message: "Unknown content field: %s."},
	ErrFileNotFound:       {Code: ErrFileNotFound, Message: "File not found.", Status: http.StatusNotFound},
	ErrFileTypeNotAllowed: {Code: ErrFileTypeNotAllowed, Message: "File type not allowed."},
	ErrFileSizeTooLarge:   {Code: ErrFileSizeTooLarge, Message: "File is too large."},
	ErrFileMissing:        {Code: ErrFileMissing, Message: "No file part in the request."},
	ErrFileStorageFailed:  {Code: ErrFileStorageFailed, Message: "File upload failed. Please try again."},

	// 3xxx: Authentication and Security Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect username or password.", Status: http.StatusUnauthorized},
	ErrLoginBlocked:       {Code: ErrLoginBlocked, Message: "Your IP is blocked due to too many failed login attempts.", Status: http.StatusForbidden},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
