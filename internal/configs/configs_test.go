package configs

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// clearEnv blanks every variable LoadConfig reads so earlier shell state
// cannot leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()

	vars := []string{
		"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "JWT_SECRET",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH",
		"MAX_UPLOAD_MB",
		"S3_BUCKET_NAME", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
		"DATABASE_URL",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func setMinimalS3(t *testing.T) {
	t.Helper()

	t.Setenv("S3_BUCKET_NAME", "uchurch-files")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_ACCESS_KEY_ID", "minio")
	t.Setenv("S3_SECRET_ACCESS_KEY", "minio123")
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	clearEnv(t)
	setMinimalS3(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want admin", cfg.AdminUsername)
	}
	if cfg.MaxUploadMB != 24 {
		t.Errorf("MaxUploadMB = %d, want 24", cfg.MaxUploadMB)
	}
	if cfg.MaxUploadBytes() != 24<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes(), int64(24<<20))
	}
	if cfg.DatabaseDSN == "" {
		t.Error("development DatabaseDSN default missing")
	}

	// The default development password must verify against the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte("password")); err != nil {
		t.Errorf("default admin password does not verify: %v", err)
	}
}

func TestLoadConfigHashesPlainAdminPassword(t *testing.T) {
	clearEnv(t)
	setMinimalS3(t)
	t.Setenv("ADMIN_PASSWORD", "s3cret-pass")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("configured admin password does not verify: %v", err)
	}
}

func TestLoadConfigProductionRequiresSecrets(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(t *testing.T)
	}{
		{
			name:    "missing JWT secret",
			prepare: func(t *testing.T) {},
		},
		{
			name: "missing admin password",
			prepare: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "prod-secret")
			},
		},
		{
			name: "missing database URL",
			prepare: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "prod-secret")
				t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$x")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			setMinimalS3(t)
			t.Setenv("ENVIRONMENT", "production")
			tc.prepare(t)

			if _, err := LoadConfig(); err == nil {
				t.Error("LoadConfig succeeded, want error")
			}
		})
	}
}

func TestLoadConfigParsesOrigins(t *testing.T) {
	clearEnv(t)
	setMinimalS3(t)
	t.Setenv("ALLOWED_ORIGINS", "https://uchurchmd.org, https://www.uchurchmd.org ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := []string{"https://uchurchmd.org", "https://www.uchurchmd.org"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	clearEnv(t)
	setMinimalS3(t)
	t.Setenv("PORT", "80")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig accepted a privileged port")
	}
}
