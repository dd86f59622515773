package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// Result is a single deal search hit with its relevance score.
type Result struct {
	DealID      string  `json:"dealId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	StoreID     string  `json:"storeId"`
	Savings     string  `json:"savings"`
	Score       float64 `json:"score"`
}

// Search performs BM25 keyword search over the indexed deals.
func (i *Index) Search(queryText string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	searchRequest := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(queryText), limit, 0, false)
	searchRequest.Fields = []string{"name", "description", "category", "storeId", "savings"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertResults(results), nil
}

// SearchByStore performs keyword search scoped to deals saved from one store.
func (i *Index) SearchByStore(queryText, storeID string, limit int) ([]Result, error) {
	// Over-fetch before scoping; the collection is capped at 100 deals.
	results, err := i.Search(queryText, 100)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	scoped := make([]Result, 0, len(results))
	for _, r := range results {
		if r.StoreID == storeID {
			scoped = append(scoped, r)
		}
		if len(scoped) == limit {
			break
		}
	}

	return scoped, nil
}

// convertResults converts Bleve search results to our Result format.
func convertResults(results *bleve.SearchResult) []Result {
	out := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		description, _ := hit.Fields["description"].(string)
		category, _ := hit.Fields["category"].(string)
		storeID, _ := hit.Fields["storeId"].(string)
		savings, _ := hit.Fields["savings"].(string)

		out = append(out, Result{
			DealID:      hit.ID,
			Name:        name,
			Description: description,
			Category:    category,
			StoreID:     storeID,
			Savings:     savings,
			Score:       hit.Score,
		})
	}

	return out
}
