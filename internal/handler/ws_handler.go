package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/sueun-dev/university-church-in-maryland/internal/app/livechat"
	"github.com/sueun-dev/university-church-in-maryland/internal/configs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/auth/jwt"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/randx"
)

const (
	wsReadBufferSize  = 1024
	wsWriteBufferSize = 1024
)

// newUpgrader builds the websocket upgrader with the same origin policy the
// CORS layer applies to the REST routes. Development accepts any origin.
func newUpgrader(cfg *configs.AppConfig) *websocket.Upgrader {
	allowedOrigins := make(map[string]struct{})
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	return &websocket.Upgrader{
		ReadBufferSize:  wsReadBufferSize,
		WriteBufferSize: wsWriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			if cfg.Environment == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("chat: websocket connection rejected, origin not allowed", "origin", origin)
			return false
		},
	}
}

// HandleChatWS upgrades the connection and registers it with the chat
// registry. Visitors may pass name, email and phone as query parameters; the
// pastor console identifies itself with user_type=pastor plus its admin
// session token (browsers cannot set headers on websocket dials, so the token
// rides in the query string).
func HandleChatWS(deps *AppDeps) http.HandlerFunc {
	upgrader := newUpgrader(deps.Config)

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		role := livechat.RoleVisitor
		if query.Get("user_type") == "pastor" {
			payload := jwt.GetPayloadFromContext(r)
			if payload == nil {
				if token := query.Get("token"); token != "" {
					payload, _ = jwt.ParseToken(token, deps.Config.JWTSecret)
				}
			}

			if !payload.IsAdmin() {
				logx.Warn("chat: pastor connect rejected without admin session", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			role = livechat.RolePastor
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Warn("chat: websocket upgrade failed", "error", err)
			return
		}

		connectionID := randx.ConnectionID()
		client := livechat.NewClient(deps.Registry, conn, connectionID)

		meta := livechat.Meta{
			Name:  strings.TrimSpace(query.Get("name")),
			Email: strings.TrimSpace(query.Get("email")),
			Phone: strings.TrimSpace(query.Get("phone")),
		}

		go client.WritePump()

		deps.Registry.Connect(connectionID, role, meta, client)

		// ReadPump blocks until the connection drops and then deregisters.
		client.ReadPump()
	}
}
