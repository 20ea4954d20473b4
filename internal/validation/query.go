package validation

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/yshpitzer/portfolio-services/internal/model"
	"github.com/yshpitzer/portfolio-services/internal/repository"
)

// ParamKind is the type a query parameter value must parse as.
type ParamKind int

const (
	ParamString ParamKind = iota
	ParamInt
)

// ParamSpec describes one allowed query parameter.
type ParamSpec struct {
	Kind ParamKind

	// Positive requires integer values to be strictly greater than zero.
	Positive bool
}

// ParamSchema is a declarative description of the query parameters an
// endpoint accepts. Validation fails fast on the first violation.
type ParamSchema struct {
	Allowed map[string]ParamSpec

	// RejectDuplicates rejects a repeated identical value for the same key.
	RejectDuplicates bool
}

// Validate checks the query values against the schema.
func (s ParamSchema) Validate(values url.Values) error {
	for key, vals := range values {
		spec, ok := s.Allowed[key]
		if !ok {
			return newError("Invalid query parameter")
		}

		for _, val := range vals {
			if spec.Kind != ParamInt {
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil {
				return newError(fmt.Sprintf("Invalid value for %s: must be an integer", key))
			}
			if spec.Positive && n <= 0 {
				return newError(fmt.Sprintf("Invalid value for %s: number of shares cannot be negative", key))
			}
		}

		if s.RejectDuplicates {
			seen := make(map[string]bool, len(vals))
			for _, val := range vals {
				if seen[val] {
					return newError(fmt.Sprintf("Duplicate values for %s", key))
				}
				seen[val] = true
			}
		}
	}

	return nil
}

// StockListParams accepts the field-equality filters of GET /stocks.
var StockListParams = ParamSchema{
	Allowed: func() map[string]ParamSpec {
		allowed := make(map[string]ParamSpec, len(repository.QueryableFields))
		for key := range repository.QueryableFields {
			allowed[key] = ParamSpec{Kind: ParamString}
		}
		return allowed
	}(),
}

// CapitalGainsParams accepts the share-count range bounds of GET /capital-gains.
var CapitalGainsParams = ParamSchema{
	Allowed: map[string]ParamSpec{
		"numsharesgt": {Kind: ParamInt},
		"numshareslt": {Kind: ParamInt, Positive: true},
	},
	RejectDuplicates: true,
}

// ParseFilterCriteria builds the share-count filter from validated
// capital-gains query values.
func ParseFilterCriteria(values url.Values) model.FilterCriteria {
	var criteria model.FilterCriteria
	if v := values.Get("numsharesgt"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.GreaterThan = &n
		}
	}
	if v := values.Get("numshareslt"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.LessThan = &n
		}
	}
	return criteria
}
