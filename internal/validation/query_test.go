package validation

import (
	"net/url"
	"testing"
)

func TestCapitalGainsParams(t *testing.T) {
	t.Run("accepts empty query", func(t *testing.T) {
		if err := CapitalGainsParams.Validate(url.Values{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts both bounds", func(t *testing.T) {
		values := url.Values{"numsharesgt": {"2"}, "numshareslt": {"10"}}
		if err := CapitalGainsParams.Validate(values); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts a negative lower bound", func(t *testing.T) {
		values := url.Values{"numsharesgt": {"-5"}}
		if err := CapitalGainsParams.Validate(values); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		values := url.Values{"foo": {"1"}}
		err := CapitalGainsParams.Validate(values)
		if err == nil {
			t.Fatal("Expected an error for unknown key")
		}
		if err.Error() != "Invalid query parameter" {
			t.Errorf("Expected invalid-parameter error, got %q", err.Error())
		}
	})

	t.Run("rejects non-integer values", func(t *testing.T) {
		values := url.Values{"numsharesgt": {"many"}}
		err := CapitalGainsParams.Validate(values)
		if err == nil {
			t.Fatal("Expected an error for non-integer value")
		}
		want := "Invalid value for numsharesgt: must be an integer"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("rejects numshareslt of zero or below", func(t *testing.T) {
		for _, v := range []string{"0", "-4"} {
			values := url.Values{"numshareslt": {v}}
			err := CapitalGainsParams.Validate(values)
			if err == nil {
				t.Errorf("Expected an error for numshareslt=%s", v)
				continue
			}
			want := "Invalid value for numshareslt: number of shares cannot be negative"
			if err.Error() != want {
				t.Errorf("Expected %q, got %q", want, err.Error())
			}
		}
	})

	t.Run("rejects a repeated identical value for the same key", func(t *testing.T) {
		values := url.Values{"numsharesgt": {"5", "5"}}
		err := CapitalGainsParams.Validate(values)
		if err == nil {
			t.Fatal("Expected an error for duplicate values")
		}
		want := "Duplicate values for numsharesgt"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("allows a repeated key with distinct values", func(t *testing.T) {
		values := url.Values{"numsharesgt": {"5", "6"}}
		if err := CapitalGainsParams.Validate(values); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}

func TestStockListParams(t *testing.T) {
	t.Run("accepts every stock field as a filter key", func(t *testing.T) {
		for _, key := range []string{"id", "name", "symbol", "purchase price", "purchase date", "shares"} {
			values := url.Values{key: {"anything"}}
			if err := StockListParams.Validate(values); err != nil {
				t.Errorf("Expected %q to be accepted, got %v", key, err)
			}
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		values := url.Values{"foo": {"1"}}
		err := StockListParams.Validate(values)
		if err == nil {
			t.Fatal("Expected an error for unknown key")
		}
		if err.Error() != "Invalid query parameter" {
			t.Errorf("Expected invalid-parameter error, got %q", err.Error())
		}
	})
}

func TestParseFilterCriteria(t *testing.T) {
	t.Run("builds both bounds", func(t *testing.T) {
		values := url.Values{"numsharesgt": {"2"}, "numshareslt": {"10"}}
		criteria := ParseFilterCriteria(values)

		if criteria.GreaterThan == nil || *criteria.GreaterThan != 2 {
			t.Errorf("Expected GreaterThan=2, got %v", criteria.GreaterThan)
		}
		if criteria.LessThan == nil || *criteria.LessThan != 10 {
			t.Errorf("Expected LessThan=10, got %v", criteria.LessThan)
		}
	})

	t.Run("leaves absent bounds nil", func(t *testing.T) {
		criteria := ParseFilterCriteria(url.Values{})

		if criteria.GreaterThan != nil || criteria.LessThan != nil {
			t.Errorf("Expected empty criteria, got %+v", criteria)
		}
	})
}
