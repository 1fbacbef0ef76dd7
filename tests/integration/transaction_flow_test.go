package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTransactionFlow(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	id := app.createTransaction(t, token, "expense", 42.5, "Food", "Lunch", "2026-08-15")
	app.createTransaction(t, token, "income", 2000, "salary", "Monthly pay", "2026-08-01")

	t.Run("get by id returns the transaction with a normalized category", func(t *testing.T) {
		rec := app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", id), "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["category"] != "food" {
			t.Errorf("expected category to be lowercased, got %v", tx["category"])
		}
	})

	t.Run("list filters by type", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?type=expense", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected 1 expense, got %v", result["total_items"])
		}
	})

	t.Run("deleting refreshes the monthly summary", func(t *testing.T) {
		rec := app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", id), "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		monthsRec := app.request("GET", "/api/v1/analytics/months", "", token)
		months := parseJSON(t, monthsRec)["months"].([]interface{})
		if len(months) != 1 {
			t.Fatalf("expected 1 month, got %d", len(months))
		}
		month := months[0].(map[string]interface{})
		if month["total_expenses"].(float64) != 0 {
			t.Errorf("expected total_expenses 0 after delete, got %v", month["total_expenses"])
		}
		if month["total_income"].(float64) != 2000 {
			t.Errorf("expected total_income 2000, got %v", month["total_income"])
		}
	})

	t.Run("deleted transactions vanish from reads", func(t *testing.T) {
		rec := app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", id), "", token)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestImportFlow(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	csv := "date,type,amount,category,description\n" +
		"15-08-2026,expense,12.50,food,Lunch\n" +
		"16-07-2026,income,2000,salary,Pay\n" +
		"17-08-2026,expense,-5,food,Bad row\n"

	rec := app.requestFile(t, "/api/v1/imports/csv", "transactions.csv", csv, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["imported"].(float64) != 2 {
		t.Errorf("expected 2 imported, got %v", result["imported"])
	}
	if result["skipped"].(float64) != 1 {
		t.Errorf("expected 1 skipped, got %v", result["skipped"])
	}
	if result["batch_id"] == "" {
		t.Error("expected a batch id")
	}

	t.Run("imported rows are stored", func(t *testing.T) {
		listRec := app.request("GET", "/api/v1/transactions", "", token)
		listResult := parseJSON(t, listRec)
		if listResult["total_items"].(float64) != 2 {
			t.Errorf("expected 2 stored transactions, got %v", listResult["total_items"])
		}
	})

	t.Run("summaries cover every touched month", func(t *testing.T) {
		monthsRec := app.request("GET", "/api/v1/analytics/months", "", token)
		months := parseJSON(t, monthsRec)["months"].([]interface{})
		if len(months) != 2 {
			t.Fatalf("expected 2 months, got %d", len(months))
		}
	})

	t.Run("an upload with no valid rows is rejected", func(t *testing.T) {
		emptyRec := app.requestFile(t, "/api/v1/imports/csv", "empty.csv",
			"date,type,amount,category,description\nnot-a-date,expense,10,food,Broken\n", token)
		if emptyRec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", emptyRec.Code, emptyRec.Body.String())
		}
	})
}
