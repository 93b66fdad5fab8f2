package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOperatorsForDataType(t *testing.T) {
	tests := []struct {
		dataType FilterDataType
		want     []FilterOperator
	}{
		{FilterTypeString, []FilterOperator{
			FilterOpEquals, FilterOpNotEquals, FilterOpContains, FilterOpStartsWith,
			FilterOpEndsWith, FilterOpIsEmpty, FilterOpIsNotEmpty,
		}},
		{FilterTypeNumber, []FilterOperator{
			FilterOpEquals, FilterOpNotEquals, FilterOpGreaterThan, FilterOpGreaterThanOrEqual,
			FilterOpLessThan, FilterOpLessThanOrEqual, FilterOpBetween,
		}},
		{FilterTypeDate, []FilterOperator{
			FilterOpEquals, FilterOpNotEquals, FilterOpGreaterThan, FilterOpGreaterThanOrEqual,
			FilterOpLessThan, FilterOpLessThanOrEqual, FilterOpBetween,
		}},
		{FilterTypeBoolean, []FilterOperator{FilterOpEquals, FilterOpNotEquals}},
		{FilterTypeSelect, []FilterOperator{
			FilterOpEquals, FilterOpNotEquals, FilterOpIn, FilterOpNotIn,
		}},
		{FilterTypeMultiSelect, []FilterOperator{FilterOpIn, FilterOpNotIn}},
		{FilterTypeRange, []FilterOperator{FilterOpBetween}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dataType), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidOperatorsForDataType(tt.dataType))
		})
	}

	t.Run("unknown data type has no operators", func(t *testing.T) {
		assert.Empty(t, ValidOperatorsForDataType("geometry"))
	})
}

func TestFilterConditionValidate(t *testing.T) {
	t.Run("contains is not applicable to numbers", func(t *testing.T) {
		err := FilterCondition{Field: "km", Operator: FilterOpContains, DataType: FilterTypeNumber}.Validate()
		assert.ErrorIs(t, err, BadParameterError)
	})

	t.Run("between on a date is valid", func(t *testing.T) {
		err := FilterCondition{Field: "date", Operator: FilterOpBetween, DataType: FilterTypeDate}.Validate()
		assert.NoError(t, err)
	})
}

func TestFilterConditionQueryValue(t *testing.T) {
	tests := []struct {
		name      string
		condition FilterCondition
		want      any
	}{
		{
			"equals yields the literal",
			FilterCondition{Operator: FilterOpEquals, Value: "ABC"},
			"ABC",
		},
		{
			"notEquals wraps in not",
			FilterCondition{Operator: FilterOpNotEquals, Value: 4},
			map[string]any{"not": 4},
		},
		{
			"contains is case insensitive",
			FilterCondition{Operator: FilterOpContains, Value: "truck"},
			map[string]any{"contains": "truck", "mode": "insensitive"},
		},
		{
			"startsWith is case insensitive",
			FilterCondition{Operator: FilterOpStartsWith, Value: "AB"},
			map[string]any{"startsWith": "AB", "mode": "insensitive"},
		},
		{
			"endsWith is case insensitive",
			FilterCondition{Operator: FilterOpEndsWith, Value: "34"},
			map[string]any{"endsWith": "34", "mode": "insensitive"},
		},
		{
			"greaterThan",
			FilterCondition{Operator: FilterOpGreaterThan, Value: 10},
			map[string]any{"gt": 10},
		},
		{
			"lessThanOrEqual",
			FilterCondition{Operator: FilterOpLessThanOrEqual, Value: 10},
			map[string]any{"lte": 10},
		},
		{
			"between from min and max",
			FilterCondition{Operator: FilterOpBetween, Value: map[string]any{"min": 10, "max": 20}},
			map[string]any{"gte": 10, "lte": 20},
		},
		{
			"between from gte and lte",
			FilterCondition{Operator: FilterOpBetween, Value: map[string]any{"gte": 10, "lte": 20}},
			map[string]any{"gte": 10, "lte": 20},
		},
		{
			"between with only a lower bound",
			FilterCondition{Operator: FilterOpBetween, Value: map[string]any{"min": 10}},
			map[string]any{"gte": 10},
		},
		{
			"in keeps the array",
			FilterCondition{Operator: FilterOpIn, Value: []string{"A", "B"}},
			map[string]any{"in": []string{"A", "B"}},
		},
		{
			"notIn keeps the array",
			FilterCondition{Operator: FilterOpNotIn, Value: []string{"A"}},
			map[string]any{"notIn": []string{"A"}},
		},
		{
			"isEmpty matches null",
			FilterCondition{Operator: FilterOpIsEmpty},
			nil,
		},
		{
			"isNotEmpty matches not null",
			FilterCondition{Operator: FilterOpIsNotEmpty},
			map[string]any{"not": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.condition.QueryValue()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown operator", func(t *testing.T) {
		_, err := FilterCondition{Operator: "weird"}.QueryValue()
		assert.ErrorIs(t, err, ErrUnknownFilterOperator)
	})

	t.Run("between rejects a scalar value", func(t *testing.T) {
		_, err := FilterCondition{Operator: FilterOpBetween, Value: 3}.QueryValue()
		assert.ErrorIs(t, err, BadParameterError)
	})
}
