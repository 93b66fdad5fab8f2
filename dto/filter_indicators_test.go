package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractActiveFilters(t *testing.T) {
	noRemove := func(key string, newValue any) {}

	t.Run("empty and excluded values yield no indicators", func(t *testing.T) {
		filters := map[string]any{
			"search":  "",
			"page":    2,
			"limit":   25,
			"status":  nil,
			"tags":    []string{},
			"range":   map[string]any{},
			"orderBy": "name",
		}

		assert.Empty(t, ExtractActiveFilters(filters, noRemove, ExtractFiltersOptions{}))
	})

	t.Run("id lists expand to one indicator per element with lookup labels", func(t *testing.T) {
		filters := map[string]any{"userIds": []string{"u1", "u2"}}
		opts := ExtractFiltersOptions{
			LookupData: map[string][]map[string]any{
				"users": {{"id": "u1", "name": "Alice"}},
			},
		}

		indicators := ExtractActiveFilters(filters, noRemove, opts)

		assert.Len(t, indicators, 2)
		assert.Equal(t, "Alice", indicators[0].Value)
		assert.Equal(t, "u2", indicators[1].Value)
	})

	t.Run("removing one id keeps the rest of the selection", func(t *testing.T) {
		filters := map[string]any{"userIds": []string{"u1", "u2"}}

		var removedKey string
		var newValue any
		onRemove := func(key string, value any) {
			removedKey = key
			newValue = value
		}

		indicators := ExtractActiveFilters(filters, onRemove, ExtractFiltersOptions{
			LookupData: map[string][]map[string]any{
				"users": {{"id": "u1", "name": "Alice"}},
			},
		})
		indicators[0].OnRemove()

		assert.Equal(t, "userIds", removedKey)
		assert.Equal(t, []any{"u2"}, newValue)
	})

	t.Run("removing the last id clears the key", func(t *testing.T) {
		filters := map[string]any{"userIds": []string{"u1"}}

		var newValue any = "sentinel"
		indicators := ExtractActiveFilters(filters, func(key string, value any) {
			newValue = value
		}, ExtractFiltersOptions{})
		indicators[0].OnRemove()

		assert.Nil(t, newValue)
	})

	t.Run("lookup falls back through fantasyName and label", func(t *testing.T) {
		filters := map[string]any{"supplierIds": []string{"s1", "s2"}}
		opts := ExtractFiltersOptions{
			LookupData: map[string][]map[string]any{
				"suppliers": {
					{"id": "s1", "fantasyName": "Tintas Norte"},
					{"id": "s2", "label": "Fornecedor 2"},
				},
			},
		}

		indicators := ExtractActiveFilters(filters, noRemove, opts)

		assert.Equal(t, "Tintas Norte", indicators[0].Value)
		assert.Equal(t, "Fornecedor 2", indicators[1].Value)
	})

	t.Run("plain lists group into a single indicator", func(t *testing.T) {
		indicators := ExtractActiveFilters(
			map[string]any{"status": []string{"OPEN", "DONE"}}, noRemove, ExtractFiltersOptions{})

		assert.Len(t, indicators, 1)
		assert.Equal(t, "2 selected", indicators[0].Value)

		indicators = ExtractActiveFilters(
			map[string]any{"status": []string{"OPEN"}}, noRemove, ExtractFiltersOptions{})

		assert.Equal(t, "OPEN", indicators[0].Value)
	})

	t.Run("removing a grouped list clears the key", func(t *testing.T) {
		var removedKey string
		indicators := ExtractActiveFilters(
			map[string]any{"status": []string{"OPEN", "DONE"}},
			func(key string, value any) {
				removedKey = key
				assert.Nil(t, value)
			},
			ExtractFiltersOptions{})
		indicators[0].OnRemove()

		assert.Equal(t, "status", removedKey)
	})

	t.Run("date ranges render according to the bounds present", func(t *testing.T) {
		from := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

		both := ExtractActiveFilters(
			map[string]any{"createdAt": map[string]any{"gte": from, "lte": to}},
			noRemove, ExtractFiltersOptions{})
		assert.Equal(t, "10/01/2026 - 20/02/2026", both[0].Value)

		onlyFrom := ExtractActiveFilters(
			map[string]any{"createdAt": map[string]any{"gte": from}},
			noRemove, ExtractFiltersOptions{})
		assert.Equal(t, "Após 10/01/2026", onlyFrom[0].Value)

		onlyTo := ExtractActiveFilters(
			map[string]any{"createdAt": map[string]any{"lte": to}},
			noRemove, ExtractFiltersOptions{})
		assert.Equal(t, "Até 20/02/2026", onlyTo[0].Value)
	})

	t.Run("numeric ranges render according to the bounds present", func(t *testing.T) {
		both := ExtractActiveFilters(
			map[string]any{"km": map[string]any{"min": 10, "max": 20}},
			noRemove, ExtractFiltersOptions{})
		assert.Equal(t, "10 - 20", both[0].Value)

		onlyMin := ExtractActiveFilters(
			map[string]any{"km": map[string]any{"min": 10}},
			noRemove, ExtractFiltersOptions{})
		assert.Equal(t, "≥10", onlyMin[0].Value)

		onlyMax := ExtractActiveFilters(
			map[string]any{"km": map[string]any{"max": 20}},
			noRemove, ExtractFiltersOptions{})
		assert.Equal(t, "≤20", onlyMax[0].Value)
	})

	t.Run("custom label and display value hooks", func(t *testing.T) {
		indicators := ExtractActiveFilters(
			map[string]any{"status": "OPEN"},
			noRemove,
			ExtractFiltersOptions{
				GetLabel:        func(key string) string { return "Situação" },
				GetDisplayValue: func(key string, value any) string { return "Aberta" },
			})

		assert.Equal(t, "Situação", indicators[0].Label)
		assert.Equal(t, "Aberta", indicators[0].Value)
	})
}

func TestCountActiveFilters(t *testing.T) {
	t.Run("lists count per element", func(t *testing.T) {
		count := CountActiveFilters(map[string]any{
			"status": []string{"X", "Y"},
			"search": "",
		})
		assert.Equal(t, 2, count)
	})

	t.Run("scalars count one each", func(t *testing.T) {
		count := CountActiveFilters(map[string]any{
			"status": "OPEN",
			"name":   "truck",
			"page":   3,
		})
		assert.Equal(t, 2, count)
	})

	t.Run("extra excluded keys", func(t *testing.T) {
		count := CountActiveFilters(map[string]any{"projectId": "p1"}, "projectId")
		assert.Equal(t, 0, count)
	})
}

func TestHasActiveFilters(t *testing.T) {
	assert.False(t, HasActiveFilters(map[string]any{"search": "", "page": 1}))
	assert.True(t, HasActiveFilters(map[string]any{"status": "OPEN"}))
}
