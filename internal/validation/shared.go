package validation

// Error is a client-facing validation failure. Handlers map it to 400.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message string) *Error {
	return &Error{Message: message}
}

// jsonKindName names the JSON kind of a decoded value for error messages.
func jsonKindName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
