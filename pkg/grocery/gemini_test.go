package grocery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend/domain"
)

const validGeneratedPayload = `{
	"items": [
		{
			"name": "tomato",
			"display_name": "Tomato",
			"quantity": 10,
			"unit": "units",
			"category": "produce",
			"from_recipes": [
				{"recipe_id": "rec-1", "meal_date": "2026-09-01", "servings": 2}
			],
			"estimated_price": 3.5,
			"optional": false
		}
	]
}`

func TestParseGeneratedItems(t *testing.T) {
	items, err := ParseGeneratedItems([]byte(validGeneratedPayload))
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "tomato", item.Name)
	assert.Equal(t, "Tomato", item.DisplayName)
	assert.InDelta(t, 10, item.Quantity, 0.001)
	assert.Equal(t, "produce", item.Category)
	require.NotNil(t, item.EstimatedPrice)
	assert.InDelta(t, 3.5, *item.EstimatedPrice, 0.001)
	require.Len(t, item.FromRecipes, 1)
	assert.Equal(t, "rec-1", item.FromRecipes[0].RecipeID)
}

func TestParseGeneratedItemsRejectsInvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":          `produce aisle`,
		"missing items key": `{"results": []}`,
		"missing name": `{"items": [{"display_name": "Tomato", "quantity": 1, "unit": "units",
			"category": "produce", "from_recipes": [], "optional": false}]}`,
		"negative quantity": `{"items": [{"name": "tomato", "display_name": "Tomato", "quantity": -1,
			"unit": "units", "category": "produce", "from_recipes": [], "optional": false}]}`,
		"empty category": `{"items": [{"name": "tomato", "display_name": "Tomato", "quantity": 1,
			"unit": "units", "category": "", "from_recipes": [], "optional": false}]}`,
		"negative price": `{"items": [{"name": "tomato", "display_name": "Tomato", "quantity": 1,
			"unit": "units", "category": "produce", "from_recipes": [], "estimated_price": -2, "optional": false}]}`,
		"incomplete source": `{"items": [{"name": "tomato", "display_name": "Tomato", "quantity": 1,
			"unit": "units", "category": "produce", "from_recipes": [{"recipe_id": "rec-1"}], "optional": false}]}`,
	}

	for label, payload := range cases {
		_, err := ParseGeneratedItems([]byte(payload))
		assert.ErrorIs(t, err, domain.ErrInvalidGenerationResult, label)
	}
}

func TestParseGeneratedItemsRejectsWholeResponseOnOneBadItem(t *testing.T) {
	payload := `{"items": [
		{"name": "tomato", "display_name": "Tomato", "quantity": 1, "unit": "units",
			"category": "produce", "from_recipes": [], "optional": false},
		{"name": "milk", "display_name": "Milk", "quantity": 1, "unit": "cup",
			"category": "dairy", "from_recipes": [], "optional": null}
	]}`

	items, err := ParseGeneratedItems([]byte(payload))
	assert.ErrorIs(t, err, domain.ErrInvalidGenerationResult)
	assert.Nil(t, items)
}

func TestParseGeneratedItemsAcceptsEmptyList(t *testing.T) {
	items, err := ParseGeneratedItems([]byte(`{"items": []}`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func newTestGeminiGenerator(baseURL string) *geminiGenerator {
	return &geminiGenerator{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func geminiResponseWith(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	})
	return string(body)
}

func TestGeminiGeneratorGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, geminiResponseWith("Here you go:\n"+validGeneratedPayload))
	}))
	defer server.Close()

	g := newTestGeminiGenerator(server.URL)
	items, err := g.Generate(context.Background(), PlanInput{UnitSystem: domain.UnitSystemImperial})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "tomato", items[0].Name)
}

func TestGeminiGeneratorGenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := newTestGeminiGenerator(server.URL)
	_, err := g.Generate(context.Background(), PlanInput{})
	assert.Error(t, err)
}

func TestGeminiGeneratorGenerateNoJSONInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiResponseWith("sorry, I cannot help with that"))
	}))
	defer server.Close()

	g := newTestGeminiGenerator(server.URL)
	_, err := g.Generate(context.Background(), PlanInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidGenerationResult)
}

func TestGeminiGeneratorGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates": []}`)
	}))
	defer server.Close()

	g := newTestGeminiGenerator(server.URL)
	_, err := g.Generate(context.Background(), PlanInput{})
	assert.ErrorIs(t, err, domain.ErrGenerationServiceFailed)
}
