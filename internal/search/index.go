/*
Package search implements full-text search over the saved-deal
collection.

The index is an in-memory Bleve index rebuilt from the collection on
demand; with the collection capped at 100 deals this is cheap enough that
no persistent index is kept.
*/
package search

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/slicehub/deal-hub/internal/profile"
)

// Index is a full-text index over saved deals.
type Index struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndex creates an empty in-memory deal index.
func NewIndex() (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Index{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping for deal documents.
func buildIndexMapping() mapping.IndexMapping {
	dealMapping := bleve.NewDocumentMapping()

	textField := bleve.NewTextFieldMapping()
	dealMapping.AddFieldMappingsAt("name", textField)
	dealMapping.AddFieldMappingsAt("description", textField)
	dealMapping.AddFieldMappingsAt("tags", textField)
	dealMapping.AddFieldMappingsAt("note", textField)
	dealMapping.AddFieldMappingsAt("category", textField)

	// Store/savings fields: stored for retrieval, not full-text indexed.
	storedField := bleve.NewTextFieldMapping()
	storedField.Index = false
	storedField.IncludeInAll = false
	dealMapping.AddFieldMappingsAt("storeId", storedField)
	dealMapping.AddFieldMappingsAt("savings", storedField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", dealMapping)

	return indexMapping
}

// IndexDeals (re)indexes the given saved deals in one batch.
func (i *Index) IndexDeals(deals []profile.SavedDeal) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, deal := range deals {
		doc := map[string]interface{}{
			"name":        deal.Coupon.Name,
			"description": deal.Coupon.Description,
			"tags":        strings.Join(deal.Tags, " "),
			"note":        deal.Note,
			"category":    string(deal.Category()),
			"storeId":     deal.Store.StoreID,
			"savings":     fmt.Sprintf("%.2f", deal.EstimatedSavings),
		}

		if err := batch.Index(deal.ID, doc); err != nil {
			log.Printf("Warning: failed to index deal %s: %v", deal.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index deals: %w", err)
	}

	return nil
}

// Count returns the number of indexed deals.
func (i *Index) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
