package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sueun-dev/university-church-in-maryland/internal/configs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/auth/jwt"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/errs"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/limiter"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/resp"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct-horse"
	testJWTSecret     = "test-secret"
)

func testDeps(t *testing.T) *AppDeps {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash: %v", err)
	}

	return &AppDeps{
		Config: &configs.AppConfig{
			Environment:       "development",
			AdminUsername:     testAdminUser,
			AdminPasswordHash: string(hash),
			JWTSecret:         testJWTSecret,
		},
	}
}

func postLogin(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, resp.JSONResponse) {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.RemoteAddr = "203.0.113.10:51234"
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	var envelope resp.JSONResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return w, envelope
}

func TestLoginIssuesAdminToken(t *testing.T) {
	deps := testDeps(t)
	guard := limiter.NewLoginGuard(limiter.DefaultMaxAttempts, time.Hour)
	h := HandleLogin(deps, guard)

	w, envelope := postLogin(t, h, `{"username":"admin","password":"correct-horse"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope.Code != 0 {
		t.Fatalf("business code = %d, want 0 (%s)", envelope.Code, envelope.Message)
	}

	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", envelope.Data)
	}
	tokenString, _ := data["token"].(string)
	if tokenString == "" {
		t.Fatal("token missing from login response")
	}

	payload, err := jwt.ParseToken(tokenString, testJWTSecret)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if !payload.IsAdmin() {
		t.Errorf("issued token is not an admin token: %+v", payload)
	}
	if payload.Username != testAdminUser {
		t.Errorf("token username = %q, want %q", payload.Username, testAdminUser)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	deps := testDeps(t)
	guard := limiter.NewLoginGuard(limiter.DefaultMaxAttempts, time.Hour)
	h := HandleLogin(deps, guard)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"nope"}`},
		{"wrong username", `{"username":"root","password":"correct-horse"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, envelope := postLogin(t, h, tc.body)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if envelope.Code != errs.ErrInvalidCredentials {
				t.Errorf("business code = %d, want %d", envelope.Code, errs.ErrInvalidCredentials)
			}
		})
	}
}

func TestLoginBlocksAfterRepeatedFailures(t *testing.T) {
	deps := testDeps(t)
	guard := limiter.NewLoginGuard(3, time.Hour)
	h := HandleLogin(deps, guard)

	for i := 0; i < 3; i++ {
		postLogin(t, h, `{"username":"admin","password":"nope"}`)
	}

	// Even the correct password is rejected while the IP is blocked.
	w, envelope := postLogin(t, h, `{"username":"admin","password":"correct-horse"}`)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if envelope.Code != errs.ErrLoginBlocked {
		t.Errorf("business code = %d, want %d", envelope.Code, errs.ErrLoginBlocked)
	}
}

func TestLoginSuccessResetsFailureCount(t *testing.T) {
	deps := testDeps(t)
	guard := limiter.NewLoginGuard(3, time.Hour)
	h := HandleLogin(deps, guard)

	postLogin(t, h, `{"username":"admin","password":"nope"}`)
	postLogin(t, h, `{"username":"admin","password":"nope"}`)

	if _, envelope := postLogin(t, h, `{"username":"admin","password":"correct-horse"}`); envelope.Code != 0 {
		t.Fatalf("login after two failures failed: code %d", envelope.Code)
	}

	// The counter restarted, so two more failures must not block the IP.
	postLogin(t, h, `{"username":"admin","password":"nope"}`)
	w, envelope := postLogin(t, h, `{"username":"admin","password":"nope"}`)

	if w.Code == http.StatusForbidden || envelope.Code == errs.ErrLoginBlocked {
		t.Error("IP blocked even though a successful login reset the counter")
	}
}

func TestSessionRequiresAdminToken(t *testing.T) {
	deps := testDeps(t)

	protected := jwt.IdentityExtractorMiddleware(testJWTSecret)(HandleSession(deps))

	r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous session check: status = %d, want 401", w.Code)
	}

	token, err := jwt.GenerateToken(&jwt.Payload{
		Username: testAdminUser,
		UserType: jwt.UserTypeAdmin,
	}, testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("authenticated session check: status = %d, want 200", w.Code)
	}

	var envelope resp.JSONResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Code != 0 {
		t.Errorf("business code = %d, want 0", envelope.Code)
	}
}
