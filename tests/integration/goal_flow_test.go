package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestGoalFlow(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	body := `{"title":"Emergency Fund","target_amount":5000,"current_amount":1250,"deadline":"2027-06-30","category":"savings"}`
	rec := app.request("POST", "/api/v1/goals", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create goal failed: %d %s", rec.Code, rec.Body.String())
	}
	goal := parseJSON(t, rec)["goal"].(map[string]interface{})
	id := goal["id"].(float64)

	t.Run("get returns the goal with derived progress", func(t *testing.T) {
		getRec := app.request("GET", fmt.Sprintf("/api/v1/goals/%.0f", id), "", token)
		if getRec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", getRec.Code, getRec.Body.String())
		}
		result := parseJSON(t, getRec)
		progress := result["progress"].(map[string]interface{})
		if progress["progress"].(float64) != 25 {
			t.Errorf("expected progress 25, got %v", progress["progress"])
		}
		if progress["remaining"].(float64) != 3750 {
			t.Errorf("expected remaining 3750, got %v", progress["remaining"])
		}
	})

	t.Run("partial updates keep the other fields", func(t *testing.T) {
		updRec := app.request("PUT", fmt.Sprintf("/api/v1/goals/%.0f", id), `{"current_amount":2500}`, token)
		if updRec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", updRec.Code, updRec.Body.String())
		}
		updated := parseJSON(t, updRec)["goal"].(map[string]interface{})
		if updated["current_amount"].(float64) != 2500 {
			t.Errorf("expected current_amount 2500, got %v", updated["current_amount"])
		}
		if updated["title"] != "Emergency Fund" {
			t.Errorf("expected title to survive the update, got %v", updated["title"])
		}
	})

	t.Run("deleted goals return 404", func(t *testing.T) {
		delRec := app.request("DELETE", fmt.Sprintf("/api/v1/goals/%.0f", id), "", token)
		if delRec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", delRec.Code, delRec.Body.String())
		}

		getRec := app.request("GET", fmt.Sprintf("/api/v1/goals/%.0f", id), "", token)
		if getRec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", getRec.Code)
		}
	})
}
