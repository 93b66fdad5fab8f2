package dto

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ankaa-erp/backend/models"
)

// SerializeFiltersToValues flattens a filter set into url query parameters.
// Lists and objects are json encoded into a single parameter, dates become
// ISO-8601 strings, scalars pass through as-is. Values that cannot be
// serialized are dropped: a filter url must never fail to build.
func SerializeFiltersToValues(filters map[string]any) url.Values {
	values := url.Values{}
	for key, value := range filters {
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			values.Set(key, v)
		case time.Time:
			values.Set(key, v.Format(time.RFC3339))
		case bool, int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			values.Set(key, fmt.Sprint(v))
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				continue
			}
			values.Set(key, string(encoded))
		}
	}
	return values
}

// DeserializeFiltersFromValues rebuilds a filter set from url query
// parameters. Fields registered in schema are parsed according to their
// declared data type; unregistered fields fall back to type sniffing. Parse
// failures always degrade to the raw string value: the page must stay usable
// with a garbage query string.
func DeserializeFiltersFromValues(
	values url.Values,
	schema map[string]models.FilterDataType,
) map[string]any {
	filters := make(map[string]any, len(values))
	for key := range values {
		raw := values.Get(key)
		if dataType, ok := schema[key]; ok {
			filters[key] = parseTypedFilterValue(raw, dataType)
			continue
		}
		filters[key] = sniffFilterValue(raw)
	}
	return filters
}

func parseTypedFilterValue(raw string, dataType models.FilterDataType) any {
	switch dataType {
	case models.FilterTypeString, models.FilterTypeSelect:
		return raw
	case models.FilterTypeNumber:
		if i, err := strconv.Atoi(raw); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case models.FilterTypeBoolean:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	case models.FilterTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	case models.FilterTypeMultiSelect, models.FilterTypeDateRange, models.FilterTypeRange:
		if parsed, ok := parseJSONFilterValue(raw); ok {
			return parsed
		}
	}
	return raw
}

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)

// sniffFilterValue guesses the type of an unregistered parameter: json for
// bracketed values, then booleans, numbers and ISO dates, raw string last.
func sniffFilterValue(raw string) any {
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		if parsed, ok := parseJSONFilterValue(raw); ok {
			return parsed
		}
		return raw
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if isoDatePrefix.MatchString(raw) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return raw
}

func parseJSONFilterValue(raw string) (any, bool) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, false
	}
	return reviveJSONValue(decoded), true
}

// reviveJSONValue walks a json-decoded value and restores the types json
// flattened: ISO date strings become time.Time again and all-string lists
// become []string.
func reviveJSONValue(value any) any {
	switch v := value.(type) {
	case string:
		if isoDatePrefix.MatchString(v) {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t
			}
		}
		return v
	case []any:
		allStrings := true
		for i, element := range v {
			v[i] = reviveJSONValue(element)
			if _, isString := v[i].(string); !isString {
				allStrings = false
			}
		}
		if allStrings && len(v) > 0 {
			strs := make([]string, len(v))
			for i, element := range v {
				strs[i] = element.(string)
			}
			return strs
		}
		return v
	case map[string]any:
		for key, element := range v {
			v[key] = reviveJSONValue(element)
		}
		return v
	}
	return value
}
