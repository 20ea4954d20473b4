package validation

import (
	"encoding/json"
	"strings"
	"testing"
)

// payload decodes a JSON object literal the same way the handlers do, so the
// values carry real JSON kinds (numbers as float64 and so on).
func payload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("Failed to decode test payload: %v", err)
	}
	return m
}

func TestValidateStockPayload_Create(t *testing.T) {
	t.Run("accepts a minimal valid payload", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10}`)

		if err := ValidateStockPayload(p, ModeCreate); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts optional name and purchase date", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10,
			"name": "Apple Inc.", "purchase date": "15-03-2024"}`)

		if err := ValidateStockPayload(p, ModeCreate); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("names all missing required fields comma-joined", func(t *testing.T) {
		p := payload(t, `{"name": "Apple Inc."}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected an error for missing fields")
		}
		want := "Missing required fields: symbol, purchase price, shares"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects wrong type naming field, expected and actual", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": "150.5", "shares": 10}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected a type error")
		}
		want := "Invalid type for purchase price: Expected number, got string"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects fractional shares", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10.5}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected a type error for fractional shares")
		}
		if !strings.Contains(err.Error(), "Invalid type for shares") {
			t.Errorf("Expected shares type error, got %q", err.Error())
		}
	})

	t.Run("rejects wrong type on an optional field that is present", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10, "name": 7}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected a type error")
		}
		want := "Invalid type for name: Expected string, got number"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("ignores an explicit null on an optional field", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10, "name": null}`)

		if err := ValidateStockPayload(p, ModeCreate); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects whitespace-only string values", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10, "name": "   "}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected an error for blank name")
		}
		want := "name value cannot be empty"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects lowercase symbol", func(t *testing.T) {
		p := payload(t, `{"symbol": "aapl", "purchase price": 150.5, "shares": 10}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected an error for lowercase symbol")
		}
		want := "symbol must be in uppercase"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects mixed-case symbol", func(t *testing.T) {
		p := payload(t, `{"symbol": "AaPL", "purchase price": 150.5, "shares": 10}`)

		if err := ValidateStockPayload(p, ModeCreate); err == nil {
			t.Error("Expected an error for mixed-case symbol")
		}
	})

	t.Run("rejects negative purchase price", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": -1, "shares": 10}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected an error for negative price")
		}
		want := "stock price can't be negative"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects negative shares", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": -3}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected an error for negative shares")
		}
		want := "shares can't be negative"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("accepts the NA sentinel purchase date", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10, "purchase date": "NA"}`)

		if err := ValidateStockPayload(p, ModeCreate); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects malformed purchase dates", func(t *testing.T) {
		bad := []string{
			"2024-03-15", // wrong order
			"15/03/2024", // wrong separator
			"5-3-2024",   // missing zero padding
			"32-01-2024", // day out of range
			"15-13-2024", // month out of range
			"30-02-2024", // not a calendar date
		}
		for _, date := range bad {
			p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10, "purchase date": "`+date+`"}`)

			err := ValidateStockPayload(p, ModeCreate)
			if err == nil {
				t.Errorf("Expected an error for date %q", date)
				continue
			}
			if !strings.Contains(err.Error(), "Expected dd-mm-yyyy") {
				t.Errorf("Expected date format error for %q, got %q", date, err.Error())
			}
		}
	})

	t.Run("surfaces type errors before semantic errors", func(t *testing.T) {
		// Negative price AND malformed date: the date is a string so its
		// format check is semantic, the price check comes first.
		p := payload(t, `{"symbol": "AAPL", "purchase price": -1, "shares": 10, "purchase date": "bogus"}`)

		err := ValidateStockPayload(p, ModeCreate)
		if err == nil {
			t.Fatal("Expected an error")
		}
		if err.Error() != "stock price can't be negative" {
			t.Errorf("Expected price error first, got %q", err.Error())
		}
	})
}

func TestValidateStockPayload_Replace(t *testing.T) {
	const full = `{"id": "abc", "symbol": "AAPL", "name": "Apple Inc.",
		"purchase date": "15-03-2024", "purchase price": 150.5, "shares": 10}`

	t.Run("accepts a fully-specified record", func(t *testing.T) {
		if err := ValidateStockPayload(payload(t, full), ModeReplace); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("requires every field including id, name and purchase date", func(t *testing.T) {
		p := payload(t, `{"symbol": "AAPL", "purchase price": 150.5, "shares": 10}`)

		err := ValidateStockPayload(p, ModeReplace)
		if err == nil {
			t.Fatal("Expected an error for missing fields")
		}
		want := "Missing required fields: id, name, purchase date"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects null on a required field", func(t *testing.T) {
		p := payload(t, `{"id": null, "symbol": "AAPL", "name": "Apple Inc.",
			"purchase date": "NA", "purchase price": 150.5, "shares": 10}`)

		err := ValidateStockPayload(p, ModeReplace)
		if err == nil {
			t.Fatal("Expected a type error for null id")
		}
		want := "Invalid type for id: Expected string, got null"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})
}
