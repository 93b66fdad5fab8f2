package models

import (
	"github.com/cockroachdb/errors"
)

type FilterOperator string

const (
	FilterOpEquals             FilterOperator = "equals"
	FilterOpNotEquals          FilterOperator = "notEquals"
	FilterOpContains           FilterOperator = "contains"
	FilterOpStartsWith         FilterOperator = "startsWith"
	FilterOpEndsWith           FilterOperator = "endsWith"
	FilterOpGreaterThan        FilterOperator = "greaterThan"
	FilterOpGreaterThanOrEqual FilterOperator = "greaterThanOrEqual"
	FilterOpLessThan           FilterOperator = "lessThan"
	FilterOpLessThanOrEqual    FilterOperator = "lessThanOrEqual"
	FilterOpBetween            FilterOperator = "between"
	FilterOpIn                 FilterOperator = "in"
	FilterOpNotIn              FilterOperator = "notIn"
	FilterOpIsEmpty            FilterOperator = "isEmpty"
	FilterOpIsNotEmpty         FilterOperator = "isNotEmpty"
)

type FilterDataType string

const (
	FilterTypeString      FilterDataType = "string"
	FilterTypeNumber      FilterDataType = "number"
	FilterTypeBoolean     FilterDataType = "boolean"
	FilterTypeDate        FilterDataType = "date"
	FilterTypeDateRange   FilterDataType = "dateRange"
	FilterTypeSelect      FilterDataType = "select"
	FilterTypeMultiSelect FilterDataType = "multiSelect"
	FilterTypeRange       FilterDataType = "range"
)

// FilterCondition is one typed search constraint coming from the UI: a field,
// an operator, a value and the declared data type of the field.
type FilterCondition struct {
	Field    string
	Operator FilterOperator
	Value    any
	DataType FilterDataType
}

var validOperatorsByDataType = map[FilterDataType][]FilterOperator{
	FilterTypeString: {
		FilterOpEquals, FilterOpNotEquals, FilterOpContains, FilterOpStartsWith,
		FilterOpEndsWith, FilterOpIsEmpty, FilterOpIsNotEmpty,
	},
	FilterTypeNumber: {
		FilterOpEquals, FilterOpNotEquals, FilterOpGreaterThan, FilterOpGreaterThanOrEqual,
		FilterOpLessThan, FilterOpLessThanOrEqual, FilterOpBetween,
	},
	FilterTypeDate: {
		FilterOpEquals, FilterOpNotEquals, FilterOpGreaterThan, FilterOpGreaterThanOrEqual,
		FilterOpLessThan, FilterOpLessThanOrEqual, FilterOpBetween,
	},
	FilterTypeBoolean: {
		FilterOpEquals, FilterOpNotEquals,
	},
	FilterTypeSelect: {
		FilterOpEquals, FilterOpNotEquals, FilterOpIn, FilterOpNotIn,
	},
	FilterTypeMultiSelect: {
		FilterOpIn, FilterOpNotIn,
	},
	FilterTypeRange: {
		FilterOpBetween,
	},
}

// ValidOperatorsForDataType returns the operators that may be applied to a
// field of the given data type. No operator is valid for every data type.
func ValidOperatorsForDataType(dataType FilterDataType) []FilterOperator {
	operators := validOperatorsByDataType[dataType]
	out := make([]FilterOperator, len(operators))
	copy(out, operators)
	return out
}

func (c FilterCondition) Validate() error {
	for _, op := range validOperatorsByDataType[c.DataType] {
		if op == c.Operator {
			return nil
		}
	}
	return errors.Wrapf(ErrOperatorNotApplicable, "operator %q on data type %q", c.Operator, c.DataType)
}

// QueryValue converts the condition into a backend-query-shaped fragment: a
// literal for equality, or a small map keyed by the query operator, in the
// shape the data-access layer's where clause consumes. isEmpty maps to an
// explicit nil (match NULL).
func (c FilterCondition) QueryValue() (any, error) {
	switch c.Operator {
	case FilterOpEquals:
		return c.Value, nil
	case FilterOpNotEquals:
		return map[string]any{"not": c.Value}, nil
	case FilterOpContains:
		return map[string]any{"contains": c.Value, "mode": "insensitive"}, nil
	case FilterOpStartsWith:
		return map[string]any{"startsWith": c.Value, "mode": "insensitive"}, nil
	case FilterOpEndsWith:
		return map[string]any{"endsWith": c.Value, "mode": "insensitive"}, nil
	case FilterOpGreaterThan:
		return map[string]any{"gt": c.Value}, nil
	case FilterOpGreaterThanOrEqual:
		return map[string]any{"gte": c.Value}, nil
	case FilterOpLessThan:
		return map[string]any{"lt": c.Value}, nil
	case FilterOpLessThanOrEqual:
		return map[string]any{"lte": c.Value}, nil
	case FilterOpBetween:
		return betweenQueryValue(c.Value)
	case FilterOpIn:
		return map[string]any{"in": c.Value}, nil
	case FilterOpNotIn:
		return map[string]any{"notIn": c.Value}, nil
	case FilterOpIsEmpty:
		return nil, nil
	case FilterOpIsNotEmpty:
		return map[string]any{"not": nil}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFilterOperator, "operator %q", c.Operator)
}

// BetweenBounds extracts the two bounds of a between value, accepting both the
// {min,max} and the {gte,lte} shapes.
func BetweenBounds(value any) (low any, high any, err error) {
	bounds, ok := value.(map[string]any)
	if !ok {
		return nil, nil, errors.Wrap(BadParameterError, "between value must be a range object")
	}
	low, lowOk := bounds["min"]
	if !lowOk {
		low = bounds["gte"]
	}
	high, highOk := bounds["max"]
	if !highOk {
		high = bounds["lte"]
	}
	return low, high, nil
}

func betweenQueryValue(value any) (any, error) {
	low, high, err := BetweenBounds(value)
	if err != nil {
		return nil, err
	}
	rangeValue := map[string]any{}
	if low != nil {
		rangeValue["gte"] = low
	}
	if high != nil {
		rangeValue["lte"] = high
	}
	return rangeValue, nil
}
