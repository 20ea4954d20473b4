package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Mode selects which fields of the stock payload schema are required.
type Mode int

const (
	// ModeCreate covers POST /stocks: symbol, purchase price and shares are
	// required; name and purchase date are optional.
	ModeCreate Mode = iota

	// ModeReplace covers PUT /stocks/{id}: a fully-specified record,
	// including the id.
	ModeReplace
)

// Kind is the JSON kind a payload field must decode to.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInt:
		return "integer"
	default:
		return "unknown"
	}
}

// FieldSpec describes one field of the stock payload schema.
type FieldSpec struct {
	Name              string
	Kind              Kind
	RequiredOnCreate  bool
	RequiredOnReplace bool
}

// stockFields is the payload schema, evaluated uniformly for both modes.
// Order matters: it fixes the order of names in missing-field messages.
var stockFields = []FieldSpec{
	{Name: "id", Kind: KindString, RequiredOnReplace: true},
	{Name: "symbol", Kind: KindString, RequiredOnCreate: true, RequiredOnReplace: true},
	{Name: "name", Kind: KindString, RequiredOnReplace: true},
	{Name: "purchase date", Kind: KindString, RequiredOnReplace: true},
	{Name: "purchase price", Kind: KindNumber, RequiredOnCreate: true, RequiredOnReplace: true},
	{Name: "shares", Kind: KindInt, RequiredOnCreate: true, RequiredOnReplace: true},
}

var dateFormat = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

func (f FieldSpec) required(mode Mode) bool {
	if mode == ModeReplace {
		return f.RequiredOnReplace
	}
	return f.RequiredOnCreate
}

// ValidateStockPayload validates a decoded JSON stock payload against the
// schema for the given mode. Missing-field and type errors surface before
// semantic (range/format) errors.
func ValidateStockPayload(payload map[string]any, mode Mode) error {
	// Required fields
	var missing []string
	for _, field := range stockFields {
		if !field.required(mode) {
			continue
		}
		if _, ok := payload[field.Name]; !ok {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		return newError(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	// Field types, for required fields and optional fields that are present.
	// An explicit null on an optional field counts as absent.
	for _, field := range stockFields {
		value, ok := payload[field.Name]
		if !ok || (!field.required(mode) && value == nil) {
			continue
		}
		if !matchesKind(value, field.Kind) {
			return newError(fmt.Sprintf(
				"Invalid type for %s: Expected %s, got %s",
				field.Name, field.Kind, jsonKindName(value),
			))
		}
	}

	// No string value may be blank, including ones outside the schema.
	// Schema fields are checked first so the failing field is deterministic.
	for _, field := range stockFields {
		if s, ok := payload[field.Name].(string); ok && strings.TrimSpace(s) == "" {
			return newError(fmt.Sprintf("%s value cannot be empty", field.Name))
		}
	}
	for key, value := range payload {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return newError(fmt.Sprintf("%s value cannot be empty", key))
		}
	}

	symbol, _ := payload["symbol"].(string)
	if !isUpper(symbol) {
		return newError("symbol must be in uppercase")
	}

	if price, ok := payload["purchase price"].(float64); ok && price < 0 {
		return newError("stock price can't be negative")
	}

	if shares, ok := payload["shares"].(float64); ok && shares < 0 {
		return newError("shares can't be negative")
	}

	if date, ok := payload["purchase date"].(string); ok && date != "NA" {
		if err := validateDate(date); err != nil {
			return err
		}
	}

	return nil
}

func matchesKind(value any, kind Kind) bool {
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindNumber:
		_, ok := value.(float64)
		return ok
	case KindInt:
		n, ok := value.(float64)
		return ok && n == math.Trunc(n)
	default:
		return false
	}
}

// isUpper reports whether s contains at least one letter and no lowercase
// letters. Digits and punctuation are allowed alongside uppercase letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// validateDate checks the dd-mm-yyyy format with a calendar-valid day and month.
func validateDate(date string) error {
	if !dateFormat.MatchString(date) {
		return newError("Invalid date format. Expected dd-mm-yyyy in valid range (e.g. months 01-12)")
	}
	if _, err := time.Parse("02-01-2006", date); err != nil {
		return newError("Invalid date format. Expected dd-mm-yyyy in valid range (e.g. months 01-12)")
	}
	return nil
}
