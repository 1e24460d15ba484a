package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/http/handler"
	"github.com/valbrand/crm-backend/internal/http/router"
	"github.com/valbrand/crm-backend/internal/repository"
	"github.com/valbrand/crm-backend/internal/security"
	"github.com/valbrand/crm-backend/internal/service"
)

const testAPIKey = "integration-test-key"

func newCRMTestServer(t *testing.T) (string, *http.Client, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.AuditLog{}, &domain.Client{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	redisServer := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	disc := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := repository.NewUserRepository(db)
	jwtMgr := security.NewJWTManager("abcdefghijklmnopqrstuvwxyz123456", time.Hour)
	auth := service.NewAuthService(users, jwtMgr,
		service.NewRedisRevocationStore(redisClient, "revoked_tokens"),
		service.NewLockoutPolicy(users),
		service.NewLogResetTokenSender(disc),
		disc,
	)
	audit := service.NewAuditService(repository.NewAuditLogRepository(db))

	h := router.NewRouter(router.Dependencies{
		AuthHandler:  handler.NewAuthHandler(auth),
		AuditHandler: handler.NewAuditHandler(audit),
		UserHandler:  handler.NewUserHandler(users),
		AuditService: audit,
		DB:           db,
		APIKey:       testAPIKey,
		Logger:       disc,
	})

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server.URL, server.Client(), db
}

func seedActiveUser(t *testing.T, db *gorm.DB, email, password string) *domain.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		FirstName:    "Ana",
		Email:        email,
		PasswordHash: hash,
		RoleID:       1,
		Status:       domain.UserStatusActive,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func doJSON(t *testing.T, client *http.Client, method, url string, headers map[string]string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, raw
}

func keyed(extra map[string]string) map[string]string {
	headers := map[string]string{"X-API-Key": testAPIKey}
	for k, v := range extra {
		headers[k] = v
	}
	return headers
}

func TestFullAuthenticationFlow(t *testing.T) {
	baseURL, client, db := newCRMTestServer(t)
	seedActiveUser(t, db, "ana@valbrand.com", "s3cret-pass")

	// Login.
	resp, raw := doJSON(t, client, http.MethodPost, baseURL+"/auth/login", keyed(nil),
		map[string]string{"email": "ana@valbrand.com", "password": "s3cret-pass"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", resp.StatusCode, raw)
	}
	var login struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if login.AccessToken == "" || login.ExpiresIn != 3600 {
		t.Fatalf("unexpected login payload %s", raw)
	}

	// Me with the fresh token.
	resp, raw = doJSON(t, client, http.MethodGet, baseURL+"/auth/me",
		keyed(map[string]string{"Authorization": "Bearer " + login.AccessToken}), nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(raw), "ana@valbrand.com") {
		t.Fatalf("me: expected profile, got %d %s", resp.StatusCode, raw)
	}

	// Refresh rotates the token.
	resp, raw = doJSON(t, client, http.MethodPost, baseURL+"/auth/refresh",
		keyed(map[string]string{"Authorization": "Bearer " + login.AccessToken}), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d body=%s", resp.StatusCode, raw)
	}
	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &refreshed); err != nil {
		t.Fatalf("decode refresh: %v", err)
	}

	// The pre-rotation token is now revoked.
	resp, raw = doJSON(t, client, http.MethodGet, baseURL+"/auth/me",
		keyed(map[string]string{"Authorization": "Bearer " + login.AccessToken}), nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("old token: expected 401, got %d body=%s", resp.StatusCode, raw)
	}

	// Logout with the new token, then it stops working too.
	resp, raw = doJSON(t, client, http.MethodPost, baseURL+"/auth/logout",
		keyed(map[string]string{"Authorization": "Bearer " + refreshed.AccessToken}), nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(raw), "Sesión cerrada") {
		t.Fatalf("logout: expected confirmation, got %d %s", resp.StatusCode, raw)
	}
	resp, _ = doJSON(t, client, http.MethodGet, baseURL+"/auth/me",
		keyed(map[string]string{"Authorization": "Bearer " + refreshed.AccessToken}), nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("post-logout me: expected 401, got %d", resp.StatusCode)
	}
}

func TestLockoutOverHTTP(t *testing.T) {
	baseURL, client, db := newCRMTestServer(t)
	seedActiveUser(t, db, "ana@valbrand.com", "s3cret-pass")

	for i := 0; i < 5; i++ {
		resp, _ := doJSON(t, client, http.MethodPost, baseURL+"/auth/login", keyed(nil),
			map[string]string{"email": "ana@valbrand.com", "password": "wrong"})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, resp.StatusCode)
		}
	}

	resp, raw := doJSON(t, client, http.MethodPost, baseURL+"/auth/login", keyed(nil),
		map[string]string{"email": "ana@valbrand.com", "password": "s3cret-pass"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("locked login: expected 403, got %d body=%s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "bloqueado") {
		t.Fatalf("expected lockout detail, got %s", raw)
	}
}

func TestForgotPasswordBodiesAreIdentical(t *testing.T) {
	baseURL, client, db := newCRMTestServer(t)
	seedActiveUser(t, db, "ana@valbrand.com", "s3cret-pass")

	_, existing := doJSON(t, client, http.MethodPost, baseURL+"/auth/forgot-password", keyed(nil),
		map[string]string{"email": "ana@valbrand.com"})
	_, missing := doJSON(t, client, http.MethodPost, baseURL+"/auth/forgot-password", keyed(nil),
		map[string]string{"email": "nobody@valbrand.com"})
	if !bytes.Equal(existing, missing) {
		t.Fatalf("forgot-password bodies differ:\n%s\n%s", existing, missing)
	}
}

func TestAuditTrailRecordsKeyedTraffic(t *testing.T) {
	baseURL, client, db := newCRMTestServer(t)
	seedActiveUser(t, db, "ana@valbrand.com", "s3cret-pass")

	// Failing login (401) leaves no record; the health probe has no key.
	doJSON(t, client, http.MethodPost, baseURL+"/auth/login", keyed(nil),
		map[string]string{"email": "ana@valbrand.com", "password": "wrong"})
	doJSON(t, client, http.MethodGet, baseURL+"/health", nil, nil)

	resp, _ := doJSON(t, client, http.MethodPost, baseURL+"/clients/", keyed(nil),
		map[string]string{"name": "Cliente Uno", "type": "COMPANY"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d", resp.StatusCode)
	}

	var entries []domain.AuditLog
	if err := db.Find(&entries).Error; err != nil {
		t.Fatalf("load audit entries: %v", err)
	}
	for _, e := range entries {
		if e.StatusCode >= 400 {
			t.Fatalf("failed request must not be audited: %+v", e)
		}
		if strings.HasPrefix(e.Endpoint, "/health") {
			t.Fatalf("health probe must not be audited: %+v", e)
		}
	}
	found := false
	for _, e := range entries {
		if e.Endpoint == "/clients/" && e.Method == http.MethodPost {
			found = true
			if e.RequestBody == nil || !strings.Contains(*e.RequestBody, "Cliente Uno") {
				t.Fatalf("expected captured request body, got %+v", e.RequestBody)
			}
		}
	}
	if !found {
		t.Fatal("expected an audit entry for the client creation")
	}
}
