package integration

import (
	"fmt"
	"net/http"
	"testing"

	"fintrack/internal/models"
)

func TestTransactionFlow_CreateAndList(t *testing.T) {
	app := setupApp(t)
	token := app.signupAndLogin(t, "txcreate")

	app.createTransaction(t, token, "2024-03-10", "credit", 1500)
	app.createTransaction(t, token, "2024-03-12", "debit", 45.5)

	rec := app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSONArray(t, rec)
	if len(result) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(result))
	}

	// Newest date first
	first := result[0].(map[string]interface{})
	if first["date"] != "2024-03-12" {
		t.Errorf("expected newest date first, got %v", first["date"])
	}
	if first["type"] != "debit" {
		t.Errorf("expected type debit, got %v", first["type"])
	}
	if first["amount"].(float64) != 45.5 {
		t.Errorf("expected amount 45.5, got %v", first["amount"])
	}
}

func TestTransactionFlow_ListIsScopedToUser(t *testing.T) {
	app := setupApp(t)
	aliceToken := app.signupAndLogin(t, "alice")
	bobToken := app.signupAndLogin(t, "bob")

	app.createTransaction(t, aliceToken, "2024-03-10", "credit", 100)
	app.createTransaction(t, bobToken, "2024-03-10", "debit", 200)

	rec := app.request("GET", "/api/v1/transactions", "", aliceToken)
	result := parseJSONArray(t, rec)
	if len(result) != 1 {
		t.Fatalf("expected 1 transaction for alice, got %d", len(result))
	}
	if result[0].(map[string]interface{})["type"] != "credit" {
		t.Error("alice must only see her own transactions")
	}
}

func TestTransactionFlow_DateFilters(t *testing.T) {
	app := setupApp(t)
	token := app.signupAndLogin(t, "txfilter")

	app.createTransaction(t, token, "2024-03-10", "credit", 100)
	app.createTransaction(t, token, "2024-03-15", "debit", 50)
	app.createTransaction(t, token, "2024-04-01", "debit", 25)

	t.Run("exact date", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?date=2024-03-15", "", token)
		result := parseJSONArray(t, rec)
		if len(result) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(result))
		}
		if result[0].(map[string]interface{})["date"] != "2024-03-15" {
			t.Errorf("unexpected date: %v", result[0].(map[string]interface{})["date"])
		}
	})

	t.Run("year and month", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?year=2024&month=3", "", token)
		result := parseJSONArray(t, rec)
		if len(result) != 2 {
			t.Fatalf("expected 2 transactions in March, got %d", len(result))
		}
	})

	t.Run("exact date beats year and month", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?date=2024-04-01&year=2024&month=3", "", token)
		result := parseJSONArray(t, rec)
		if len(result) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(result))
		}
		if result[0].(map[string]interface{})["date"] != "2024-04-01" {
			t.Error("exact date filter must take precedence")
		}
	})

	t.Run("limit caps rows", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?limit=2", "", token)
		result := parseJSONArray(t, rec)
		if len(result) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(result))
		}
	})
}

func TestTransactionFlow_Update(t *testing.T) {
	app := setupApp(t)
	token := app.signupAndLogin(t, "txupdate")

	id := app.createTransaction(t, token, "2024-03-10", "credit", 100)

	rec := app.request("PUT", fmt.Sprintf("/api/v1/transactions/%.0f", id),
		`{"amount":75,"description":"corrected"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["amount"].(float64) != 75 {
		t.Errorf("expected echoed amount 75, got %v", result["amount"])
	}

	// The persisted row carries the new amount, untouched fields survive
	var tx models.Transaction
	if err := app.DB.First(&tx, uint(id)).Error; err != nil {
		t.Fatalf("failed to load transaction: %v", err)
	}
	if tx.Amount != 75 {
		t.Errorf("expected persisted amount 75, got %v", tx.Amount)
	}
	if tx.Type != models.TransactionTypeCredit {
		t.Errorf("untouched type must survive, got %v", tx.Type)
	}
	if tx.Description != "corrected" {
		t.Errorf("expected description corrected, got %q", tx.Description)
	}
}

func TestTransactionFlow_UpdateSomeoneElsesTransaction(t *testing.T) {
	app := setupApp(t)
	ownerToken := app.signupAndLogin(t, "owner")
	otherToken := app.signupAndLogin(t, "other")

	id := app.createTransaction(t, ownerToken, "2024-03-10", "credit", 100)

	// The response is indistinguishable from a successful update
	rec := app.request("PUT", fmt.Sprintf("/api/v1/transactions/%.0f", id),
		`{"amount":1}`, otherToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// But the row is untouched
	var tx models.Transaction
	if err := app.DB.First(&tx, uint(id)).Error; err != nil {
		t.Fatalf("failed to load transaction: %v", err)
	}
	if tx.Amount != 100 {
		t.Errorf("cross-user update must not change the row, amount is %v", tx.Amount)
	}
}

func TestTransactionFlow_Delete(t *testing.T) {
	app := setupApp(t)
	token := app.signupAndLogin(t, "txdelete")

	id := app.createTransaction(t, token, "2024-03-10", "debit", 30)

	rec := app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", id), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/transactions", "", token)
	result := parseJSONArray(t, rec)
	if len(result) != 0 {
		t.Fatalf("expected no transactions after delete, got %d", len(result))
	}
}

func TestTransactionFlow_DeleteSomeoneElsesTransaction(t *testing.T) {
	app := setupApp(t)
	ownerToken := app.signupAndLogin(t, "delowner")
	otherToken := app.signupAndLogin(t, "delother")

	id := app.createTransaction(t, ownerToken, "2024-03-10", "credit", 100)

	// Indistinguishable from a successful delete
	rec := app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", id), "", otherToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["message"] != "Transaction deleted successfully" {
		t.Errorf("unexpected message: %v", result["message"])
	}

	// The owner's row survives
	var count int64
	app.DB.Model(&models.Transaction{}).Where("id = ?", uint(id)).Count(&count)
	if count != 1 {
		t.Error("cross-user delete must not remove the row")
	}
}

func TestTransactionFlow_InvalidPayloadRejected(t *testing.T) {
	app := setupApp(t)
	token := app.signupAndLogin(t, "txinvalid")

	for name, body := range map[string]string{
		"bad date format": `{"date":"10-03-2024","amount":10,"type":"credit"}`,
		"negative amount": `{"date":"2024-03-10","amount":-5,"type":"credit"}`,
		"unknown type":    `{"date":"2024-03-10","amount":10,"type":"transfer"}`,
	} {
		rec := app.request("POST", "/api/v1/transactions", body, token)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}
