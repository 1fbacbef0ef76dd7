package integration

import (
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	t.Run("correct password returns a token", func(t *testing.T) {
		app := setupApp(t)

		token := app.login(t)
		if token == "" {
			t.Fatal("expected a non-empty token")
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/v1/auth/login", `{"password":"wrong"}`, "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestProtectedRoutes(t *testing.T) {
	t.Run("requests without a token are rejected", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/v1/transactions", "", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "UNAUTHORIZED" {
			t.Errorf("expected error code UNAUTHORIZED, got %v", errObj["code"])
		}
	})

	t.Run("requests with a garbage token are rejected", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/v1/transactions", "", "not-a-jwt")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "UNAUTHORIZED" {
			t.Errorf("expected error code UNAUTHORIZED, got %v", errObj["code"])
		}
	})

	t.Run("requests with a valid token pass through", func(t *testing.T) {
		app := setupApp(t)
		token := app.login(t)

		rec := app.request("GET", "/api/v1/transactions", "", token)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
