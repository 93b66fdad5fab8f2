package repositories

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ankaa-erp/backend/models"
	"github.com/cockroachdb/errors"
)

// ApplyFilterCondition adds one filter condition to a select builder,
// translating the condition's operator to the matching sql predicate. Text
// matches are case insensitive.
func ApplyFilterCondition(
	query squirrel.SelectBuilder,
	condition models.FilterCondition,
) (squirrel.SelectBuilder, error) {
	if err := condition.Validate(); err != nil {
		return query, err
	}

	field := condition.Field

	switch condition.Operator {
	case models.FilterOpEquals:
		return query.Where(squirrel.Eq{field: condition.Value}), nil
	case models.FilterOpNotEquals:
		return query.Where(squirrel.NotEq{field: condition.Value}), nil
	case models.FilterOpContains:
		return query.Where(field+" ILIKE ?", fmt.Sprintf("%%%v%%", condition.Value)), nil
	case models.FilterOpStartsWith:
		return query.Where(field+" ILIKE ?", fmt.Sprintf("%v%%", condition.Value)), nil
	case models.FilterOpEndsWith:
		return query.Where(field+" ILIKE ?", fmt.Sprintf("%%%v", condition.Value)), nil
	case models.FilterOpGreaterThan:
		return query.Where(squirrel.Gt{field: condition.Value}), nil
	case models.FilterOpGreaterThanOrEqual:
		return query.Where(squirrel.GtOrEq{field: condition.Value}), nil
	case models.FilterOpLessThan:
		return query.Where(squirrel.Lt{field: condition.Value}), nil
	case models.FilterOpLessThanOrEqual:
		return query.Where(squirrel.LtOrEq{field: condition.Value}), nil
	case models.FilterOpBetween:
		low, high, err := models.BetweenBounds(condition.Value)
		if err != nil {
			return query, err
		}
		if low != nil {
			query = query.Where(squirrel.GtOrEq{field: low})
		}
		if high != nil {
			query = query.Where(squirrel.LtOrEq{field: high})
		}
		return query, nil
	case models.FilterOpIn:
		return query.Where(squirrel.Eq{field: condition.Value}), nil
	case models.FilterOpNotIn:
		return query.Where(squirrel.NotEq{field: condition.Value}), nil
	case models.FilterOpIsEmpty:
		return query.Where(squirrel.Eq{field: nil}), nil
	case models.FilterOpIsNotEmpty:
		return query.Where(squirrel.NotEq{field: nil}), nil
	}
	return query, errors.Wrapf(models.ErrUnknownFilterOperator, "operator %q", condition.Operator)
}

// ApplyFilterConditions folds a list of conditions into the builder.
func ApplyFilterConditions(
	query squirrel.SelectBuilder,
	conditions []models.FilterCondition,
) (squirrel.SelectBuilder, error) {
	var err error
	for _, condition := range conditions {
		query, err = ApplyFilterCondition(query, condition)
		if err != nil {
			return query, err
		}
	}
	return query, nil
}
