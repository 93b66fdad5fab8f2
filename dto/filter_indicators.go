package dto

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/ankaa-erp/backend/pure_utils"
)

// FilterIndicator is one removable chip representing a single active filter
// value. It is a view model: it only lives for one render pass.
type FilterIndicator struct {
	Id    string
	Label string
	Value string
	Icon  string
	// OnRemove removes this indicator's value from the filter set. For one
	// element of a multi-select it removes only that element, keeping the
	// rest of the selection.
	OnRemove func()
}

// OnRemoveFilter receives the filter key and the value it should now hold;
// a nil newValue clears the key entirely.
type OnRemoveFilter func(key string, newValue any)

type ExtractFiltersOptions struct {
	GetLabel        func(key string) string
	GetDisplayValue func(key string, value any) string
	GetIcon         func(key string) string
	ExcludeKeys     []string
	// LookupData resolves entity ids to human labels, keyed by the
	// pluralized entity name ("userIds" looks into "users").
	LookupData map[string][]map[string]any
}

// Pagination, ordering and query plumbing keys are never filter indicators.
var defaultExcludedFilterKeys = []string{
	"page", "limit", "offset", "orderBy", "sortOrder", "include", "where", "search",
}

const dateDisplayLayout = "02/01/2006"

// ExtractActiveFilters reduces an active filter set to its removable display
// indicators. Keys ending in "Ids" holding a list expand to one indicator per
// element so that each selected entity can be removed on its own.
func ExtractActiveFilters(
	filters map[string]any,
	onRemove OnRemoveFilter,
	opts ExtractFiltersOptions,
) []FilterIndicator {
	indicators := make([]FilterIndicator, 0, len(filters))

	activeKeys := pure_utils.Filter(sortedFilterKeys(filters), func(key string) bool {
		return !isExcludedFilterKey(key, opts.ExcludeKeys) && !isEmptyFilterValue(filters[key])
	})
	for _, key := range activeKeys {
		value := filters[key]

		label := key
		if opts.GetLabel != nil {
			label = opts.GetLabel(key)
		}
		var icon string
		if opts.GetIcon != nil {
			icon = opts.GetIcon(key)
		}

		if elements, ok := sliceElements(value); ok {
			if strings.HasSuffix(key, "Ids") {
				indicators = append(indicators,
					expandIdFilter(key, label, icon, elements, onRemove, opts)...)
				continue
			}

			displayValue := fmt.Sprint(elements[0])
			if len(elements) > 1 {
				displayValue = fmt.Sprintf("%d selected", len(elements))
			}
			indicators = append(indicators, FilterIndicator{
				Id:       key,
				Label:    label,
				Value:    displayValue,
				Icon:     icon,
				OnRemove: func() { onRemove(key, nil) },
			})
			continue
		}

		displayValue := displayFilterValue(value)
		if opts.GetDisplayValue != nil {
			displayValue = opts.GetDisplayValue(key, value)
		}
		indicators = append(indicators, FilterIndicator{
			Id:       key,
			Label:    label,
			Value:    displayValue,
			Icon:     icon,
			OnRemove: func() { onRemove(key, nil) },
		})
	}
	return indicators
}

// CountActiveFilters counts active filter values for a badge: a list counts
// one per element, anything else counts one.
func CountActiveFilters(filters map[string]any, excludeKeys ...string) int {
	count := 0
	for key, value := range filters {
		if isExcludedFilterKey(key, excludeKeys) || isEmptyFilterValue(value) {
			continue
		}
		if elements, ok := sliceElements(value); ok {
			count += len(elements)
			continue
		}
		count++
	}
	return count
}

func HasActiveFilters(filters map[string]any, excludeKeys ...string) bool {
	return CountActiveFilters(filters, excludeKeys...) > 0
}

func expandIdFilter(
	key, label, icon string,
	elements []any,
	onRemove OnRemoveFilter,
	opts ExtractFiltersOptions,
) []FilterIndicator {
	lookup := opts.LookupData[pluralizedEntityName(key)]

	indicators := make([]FilterIndicator, 0, len(elements))
	for _, element := range elements {
		id := fmt.Sprint(element)
		indicators = append(indicators, FilterIndicator{
			Id:       key + ":" + id,
			Label:    label,
			Value:    lookupEntityLabel(lookup, id),
			Icon:     icon,
			OnRemove: removeOneId(key, elements, element, onRemove),
		})
	}
	return indicators
}

// removeOneId builds a removal callback that drops a single id from the
// selection, keeping every other selected id in place. Removing the last id
// clears the key.
func removeOneId(key string, elements []any, element any, onRemove OnRemoveFilter) func() {
	return func() {
		remaining := pure_utils.Without(elements, element)
		if len(remaining) == 0 {
			onRemove(key, nil)
			return
		}
		onRemove(key, remaining)
	}
}

func lookupEntityLabel(lookup []map[string]any, id string) string {
	for _, entity := range lookup {
		if fmt.Sprint(entity["id"]) != id {
			continue
		}
		for _, labelField := range []string{"name", "fantasyName", "label"} {
			if label, ok := entity[labelField].(string); ok && label != "" {
				return label
			}
		}
		return id
	}
	return id
}

// pluralizedEntityName maps an id-list filter key to its lookup table name:
// "userIds" -> "users".
func pluralizedEntityName(key string) string {
	return strings.TrimSuffix(key, "Ids") + "s"
}

func displayFilterValue(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(dateDisplayLayout)
	case map[string]any:
		if display, ok := displayRangeValue(v); ok {
			return display
		}
	}
	return fmt.Sprint(value)
}

// displayRangeValue renders date ranges ({from,to} or {gte,lte} of dates) and
// numeric ranges ({min,max}) according to which bounds are set.
func displayRangeValue(bounds map[string]any) (string, bool) {
	low, lowOk := firstPresent(bounds, "from", "gte", "min")
	high, highOk := firstPresent(bounds, "to", "lte", "max")
	if !lowOk && !highOk {
		return "", false
	}

	lowDate, lowIsDate := low.(time.Time)
	highDate, highIsDate := high.(time.Time)
	if lowIsDate || highIsDate {
		switch {
		case lowIsDate && highIsDate:
			return lowDate.Format(dateDisplayLayout) + " - " + highDate.Format(dateDisplayLayout), true
		case lowIsDate:
			return "Após " + lowDate.Format(dateDisplayLayout), true
		default:
			return "Até " + highDate.Format(dateDisplayLayout), true
		}
	}

	switch {
	case lowOk && highOk:
		return fmt.Sprintf("%v - %v", low, high), true
	case lowOk:
		return fmt.Sprintf("≥%v", low), true
	default:
		return fmt.Sprintf("≤%v", high), true
	}
}

func firstPresent(bounds map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := bounds[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func isExcludedFilterKey(key string, extraExcluded []string) bool {
	for _, excluded := range defaultExcludedFilterKeys {
		if key == excluded {
			return true
		}
	}
	for _, excluded := range extraExcluded {
		if key == excluded {
			return true
		}
	}
	return false
}

// isEmptyFilterValue reports whether a filter value carries no constraint:
// nil, empty string, empty list or empty object.
func isEmptyFilterValue(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case time.Time:
		return v.IsZero()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func sliceElements(value any) ([]any, bool) {
	if _, isTime := value.(time.Time); isTime {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	elements := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elements[i] = rv.Index(i).Interface()
	}
	return elements, true
}

func sortedFilterKeys(filters map[string]any) []string {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
