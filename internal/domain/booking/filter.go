package booking

import (
	"fmt"
	"strconv"

	"github.com/bookbnb/service-booking/pkg/domain"
)

// Operator is a comparison applied between a column and a filter value.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
)

// Condition is one conjunct of a list query predicate.
type Condition struct {
	Field string
	Op    Operator
	Value interface{}
}

// ParamSpec declares one filterable query parameter: the field it
// targets, the comparison, how the raw value is parsed, and an optional
// default applied when the parameter is absent.
type ParamSpec struct {
	Name    string
	Field   string
	Op      Operator
	Parse   func(string) (interface{}, error)
	Default string
}

func parseInt(raw string) (interface{}, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("expected an integer")
	}
	return v, nil
}

func parseDate(raw string) (interface{}, error) {
	d, err := ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("expected a YYYY-MM-DD date")
	}
	return d, nil
}

func parseString(raw string) (interface{}, error) {
	return raw, nil
}

// ListParams is the declarative table of supported list filters.
// blockchain_status defaults to CONFIRMED when the parameter is absent;
// every other absent parameter is simply omitted from the conjunction.
var ListParams = []ParamSpec{
	{Name: "tenant_id", Field: "tenant_id", Op: OpEq, Parse: parseInt},
	{Name: "publication_id", Field: "publication_id", Op: OpEq, Parse: parseInt},
	{Name: "initial_date", Field: "initial_date", Op: OpGte, Parse: parseDate},
	{Name: "final_date", Field: "final_date", Op: OpLte, Parse: parseDate},
	{Name: "booking_date", Field: "booking_date", Op: OpEq, Parse: parseDate},
	{Name: "blockchain_status", Field: "blockchain_status", Op: OpEq, Parse: parseString, Default: string(ChainConfirmed)},
	{Name: "blockchain_transaction_hash", Field: "blockchain_transaction_hash", Op: OpEq, Parse: parseString},
	{Name: "booking_status", Field: "booking_status", Op: OpEq, Parse: parseString},
}

// BuildConditions turns the present (or defaulted) parameters into a
// conjunctive condition list. get reports a raw parameter value and
// whether the parameter was supplied. A malformed value yields a
// ValidationError naming the parameter.
func BuildConditions(get func(name string) (string, bool)) ([]Condition, error) {
	conditions := make([]Condition, 0, len(ListParams))
	for _, spec := range ListParams {
		raw, present := get(spec.Name)
		if !present || raw == "" {
			if spec.Default == "" {
				continue
			}
			raw = spec.Default
		}

		value, err := spec.Parse(raw)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid %s: %v", spec.Name, err))
		}
		conditions = append(conditions, Condition{Field: spec.Field, Op: spec.Op, Value: value})
	}
	return conditions, nil
}
