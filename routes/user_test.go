package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	os.Setenv("REFRESH_TOKEN_SECRET", "testrefreshsecret")
	// Token creation records refresh tokens in Redis; the write is fire and
	// forget, so an unreachable localhost client is fine for tests.
	storage.InitializeRedis()

	app := newTestApp(t)
	app.Post("/api/auth/register", Register)
	app.Post("/api/auth/login", Login)
	app.Build()
	return app
}

func postJSON(t *testing.T, app *iris.Application, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestRegisterCreatesAdminProfile(t *testing.T) {
	db := setupTestDB(t)
	app := buildAuthTestApp(t)

	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"fullName": "Agus Budi",
		"email":    "agus@example.com",
		"password": "supersecret1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var profile models.Profile
	if err := db.First(&profile).Error; err != nil {
		t.Fatalf("expected a profile row: %v", err)
	}
	if profile.Role != "admin" {
		t.Fatalf("expected admin role on sign-up profile, got %q", profile.Role)
	}

	// duplicate email is a conflict
	resp = postJSON(t, app, "/api/auth/register", map[string]string{
		"email":    "agus@example.com",
		"password": "supersecret1",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.Code)
	}
}

func TestLoginAdminGate(t *testing.T) {
	db := setupTestDB(t)
	app := buildAuthTestApp(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret1"), bcrypt.DefaultCost)

	admin := models.User{Email: "admin@example.com", Password: string(hash)}
	mustCreate(t, db, &admin)
	mustCreate(t, db, &models.Profile{UserID: admin.ID, FullName: "Admin", Role: "admin"})

	customer := models.User{Email: "customer@example.com", Password: string(hash)}
	mustCreate(t, db, &customer)
	mustCreate(t, db, &models.Profile{UserID: customer.ID, FullName: "Customer", Role: "customer"})

	// valid credentials + admin role: session issued
	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "supersecret1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin login, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["accessToken"] == nil || body["accessToken"] == "" {
		t.Fatal("expected an access token for admin login")
	}

	// valid credentials + non-admin role: hard rejection, no session
	resp = postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "customer@example.com", "password": "supersecret1",
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin login, got %d", resp.Code)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("accessToken")) {
		t.Fatal("non-admin login must not issue tokens")
	}

	// invalid credentials: no session created
	resp = postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "wrongpassword",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.Code)
	}

	// unknown user: indistinguishable from bad password
	resp = postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "nobody@example.com", "password": "supersecret1",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", resp.Code)
	}
}

func TestLoginWithoutProfileRejected(t *testing.T) {
	db := setupTestDB(t)
	app := buildAuthTestApp(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret1"), bcrypt.DefaultCost)
	user := models.User{Email: "orphan@example.com", Password: string(hash)}
	mustCreate(t, db, &user)

	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "orphan@example.com", "password": "supersecret1",
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when no profile exists, got %d", resp.Code)
	}
}
