package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"mealplanner-backend/domain"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// geminiGenerator delegates ingredient expansion and consolidation to the
// Gemini API and validates the structured response against the grocery item
// schema. Any missing or mistyped required field fails the whole generation;
// the call is never retried here.
type geminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiGenerator returns a generator backed by the Gemini REST API.
func NewGeminiGenerator(apiKey, model string) Generator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, input PlanInput) ([]domain.GroceryItem, error) {
	payload := buildGenerationPayload(input)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"You are a grocery list generation assistant that MUST output only valid JSON. "+
			"Given this meal plan payload: %s, "+
			"expand each meal's recipe into its ingredient list scaled by the requested servings, "+
			"normalize ingredient names, merge duplicates and sum quantities using the \"%s\" unit system, "+
			"categorize every item (produce, dairy, meat, seafood, spices, pantry, frozen, beverages, household, bakery), "+
			"subtract the pantry items where units are compatible, "+
			"and estimate rough USD prices. "+
			"Mark items inferred from freeform descriptions as optional. "+
			"Return ONLY a JSON object of the form "+
			"{\"items\": [{\"name\", \"display_name\", \"quantity\", \"unit\", \"quantity_in_grams\"?, "+
			"\"category\", \"notes\"?, \"from_recipes\": [{\"recipe_id\", \"meal_date\", \"servings\"}], "+
			"\"estimated_price\"?, \"store_suggestions\"?, \"optional\"}]}. "+
			"Do not include any text outside the JSON object.",
		string(payloadJSON),
		input.UnitSystem,
	)

	geminiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.3,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGenerationServiceFailed
	}

	responseText := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)

	// Scrape the JSON object out of the response text.
	startIdx := strings.Index(responseText, "{")
	endIdx := strings.LastIndex(responseText, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return nil, domain.ErrInvalidGenerationResult
	}

	return ParseGeneratedItems([]byte(responseText[startIdx : endIdx+1]))
}

func buildGenerationPayload(input PlanInput) map[string]interface{} {
	meals := make([]map[string]interface{}, 0, len(input.Meals))
	for _, meal := range input.Meals {
		entry := map[string]interface{}{
			"date":      meal.Date,
			"meal_time": meal.MealTime,
			"title":     meal.Title,
			"servings":  meal.Servings,
		}
		if meal.Description != "" {
			entry["description"] = meal.Description
		}
		if rec, ok := input.Recipes[meal.RecipeID]; ok {
			entry["recipe"] = map[string]interface{}{
				"id":          rec.ID,
				"title":       rec.Title,
				"ingredients": rec.Ingredients,
			}
		}
		meals = append(meals, entry)
	}

	pantry := make([]map[string]interface{}, 0, len(input.Pantry))
	for _, p := range input.Pantry {
		pantry = append(pantry, map[string]interface{}{
			"item":     p.Item,
			"quantity": p.Quantity,
			"unit":     p.Unit,
		})
	}

	return map[string]interface{}{
		"date_range": map[string]string{
			"start": input.StartDate,
			"end":   input.EndDate,
		},
		"meals":       meals,
		"pantry":      pantry,
		"unit_system": input.UnitSystem,
	}
}

type generatedSource struct {
	RecipeID *string `json:"recipe_id"`
	MealDate *string `json:"meal_date"`
	Servings *int    `json:"servings"`
}

type generatedItem struct {
	Name             *string           `json:"name"`
	DisplayName      *string           `json:"display_name"`
	Quantity         *float64          `json:"quantity"`
	Unit             *string           `json:"unit"`
	QuantityInGrams  *float64          `json:"quantity_in_grams"`
	Category         *string           `json:"category"`
	Notes            string            `json:"notes"`
	FromRecipes      []generatedSource `json:"from_recipes"`
	EstimatedPrice   *float64          `json:"estimated_price"`
	StoreSuggestions []string          `json:"store_suggestions"`
	Optional         *bool             `json:"optional"`
}

type generatedResponse struct {
	Items []generatedItem `json:"items"`
}

// ParseGeneratedItems validates the generation service's JSON payload against
// the grocery item schema and assigns ids. A single invalid item rejects the
// whole response.
func ParseGeneratedItems(data []byte) ([]domain.GroceryItem, error) {
	var parsed generatedResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.ErrInvalidGenerationResult
	}
	if parsed.Items == nil {
		return nil, domain.ErrInvalidGenerationResult
	}

	items := make([]domain.GroceryItem, 0, len(parsed.Items))
	for _, raw := range parsed.Items {
		if raw.Name == nil || raw.DisplayName == nil || raw.Quantity == nil ||
			raw.Unit == nil || raw.Category == nil || raw.Optional == nil ||
			raw.FromRecipes == nil {
			return nil, domain.ErrInvalidGenerationResult
		}
		if *raw.Quantity < 0 || *raw.Category == "" {
			return nil, domain.ErrInvalidGenerationResult
		}
		if raw.EstimatedPrice != nil && *raw.EstimatedPrice < 0 {
			return nil, domain.ErrInvalidGenerationResult
		}

		sources := make([]domain.GroceryItemSource, 0, len(raw.FromRecipes))
		for _, src := range raw.FromRecipes {
			if src.RecipeID == nil || src.MealDate == nil || src.Servings == nil {
				return nil, domain.ErrInvalidGenerationResult
			}
			sources = append(sources, domain.GroceryItemSource{
				RecipeID: *src.RecipeID,
				MealDate: *src.MealDate,
				Servings: *src.Servings,
			})
		}

		items = append(items, domain.GroceryItem{
			ID:               uuid.New().String(),
			Name:             *raw.Name,
			DisplayName:      *raw.DisplayName,
			Quantity:         *raw.Quantity,
			Unit:             *raw.Unit,
			QuantityInGrams:  raw.QuantityInGrams,
			Category:         *raw.Category,
			Notes:            raw.Notes,
			FromRecipes:      sources,
			EstimatedPrice:   raw.EstimatedPrice,
			StoreSuggestions: raw.StoreSuggestions,
			Optional:         *raw.Optional,
		})
	}

	return items, nil
}
