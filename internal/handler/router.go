package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/auth/jwt"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/limiter"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

// Contact form throttling: roughly one submission per five minutes per IP,
// with a small burst for legitimate corrections.
const (
	ContactRate  = 1.0 / 300
	ContactBurst = 3
)

const robotsTxt = "User-agent: *\nDisallow: /api/\nDisallow: /ws/\n"

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS, applies global middleware, and mounts the public site
// API, the admin console API, and the live chat websocket endpoint.
func Router(deps *AppDeps) http.Handler {
	contactLimiter := limiter.NewIPRateLimiter(rate.Limit(ContactRate), ContactBurst)
	loginGuard := limiter.NewLoginGuard(limiter.DefaultMaxAttempts, limiter.DefaultBlockTime)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "UChurchMD Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(robotsTxt))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", HandleLogin(deps, loginGuard))
			auth.Get("/session", HandleSession(deps))
		})

		// Public site surface.
		api.Get("/files", HandleListFiles(deps))
		api.Get("/files/{id}/download", HandleDownloadFile(deps))
		api.Get("/posts", HandleListPosts(deps))
		api.Get("/posts/{id}", HandleGetPost(deps))
		api.Get("/zoom-links", HandleListZoomLinks(deps))
		api.Get("/content", HandleGetContent(deps))

		rateLimitedContact := contactLimiter.Middleware(HandleCreateMessage(deps))
		api.Post("/messages", rateLimitedContact.ServeHTTP)

		// Admin console surface.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(RequireAdmin)

			admin.Post("/files", HandleUploadFile(deps))
			admin.Delete("/files/{id}", HandleDeleteFile(deps))

			admin.Post("/posts", HandleCreatePost(deps))
			admin.Put("/posts/{id}", HandleUpdatePost(deps))
			admin.Delete("/posts/{id}", HandleDeletePost(deps))

			admin.Get("/messages", HandleListMessages(deps))
			admin.Put("/messages/{id}/read", HandleMarkMessageRead(deps))
			admin.Delete("/messages/{id}", HandleDeleteMessage(deps))

			admin.Post("/zoom-links", HandleCreateZoomLink(deps))
			admin.Put("/zoom-links/{id}", HandleUpdateZoomLink(deps))
			admin.Delete("/zoom-links/{id}", HandleDeleteZoomLink(deps))

			admin.Put("/content", HandleUpdateContent(deps))
		})
	})

	r.With(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret)).
		Get("/ws/chat", HandleChatWS(deps))

	return r
}
