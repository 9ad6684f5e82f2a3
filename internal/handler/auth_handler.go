/*
Package handler provides the HTTP handlers and routing setup for the church
site backend.

This file holds the admin console authentication handlers: a single configured
admin account, bcrypt password verification, per-IP failed-attempt blocking,
and JWT session issuance.
*/
package handler

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/auth/jwt"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/limiter"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/req"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin verifies the admin credentials and issues a session JWT.
// Each failed attempt counts against the client IP; an exhausted IP is
// blocked for the guard's block window.
func HandleLogin(deps *AppDeps, guard *limiter.LoginGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := limiter.ClientIP(r)

		if guard.Blocked(ip) {
			logx.Warn("login rejected: IP blocked", "remote_ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrLoginBlocked))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(deps.Config.AdminUsername)) == 1
		passwordErr := bcrypt.CompareHashAndPassword([]byte(deps.Config.AdminPasswordHash), []byte(input.Password))

		if !usernameOK || passwordErr != nil {
			remaining := guard.RegisterFailure(ip)
			logx.Warn("login failed", "username", input.Username, "attempts_remaining", remaining)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		guard.Reset(ip)

		payload := &jwt.Payload{
			Username: deps.Config.AdminUsername,
			UserType: jwt.UserTypeAdmin,
		}

		token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.AdminSessionExpiration)
		if err != nil {
			logx.Error(err, "login: jwt generation failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": token,
			"user": map[string]any{
				"username": deps.Config.AdminUsername,
				"userType": jwt.UserTypeAdmin,
			},
		})
	}
}

// HandleSession echoes the identity of the current session so the console can
// restore its state after a page reload.
func HandleSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if !payload.IsAdmin() {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": map[string]any{
				"username": payload.Username,
				"userType": payload.UserType,
			},
		})
	}
}
