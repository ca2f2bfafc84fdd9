package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/mkuznecov/shopify_ecom/internal/models"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/service"
)

// Service answers keyword search over the catalog: products whose name
// contains the keyword, case-insensitively. With an Elasticsearch client
// configured it queries the product index; otherwise it scans the database,
// so both paths keep the same substring semantics.
type Service struct {
	ES    *elasticsearch.Client
	Index string
	Repo  *repo.GormRepo
}

// Search returns service.ErrNoMatch for an empty result set: "no results" is
// distinct from "success with empty list" here.
func (s *Service) Search(ctx context.Context, keyword string, from, size int) ([]models.Product, error) {
	if keyword == "" {
		return nil, service.ErrValidation
	}

	var (
		items []models.Product
		err   error
	)
	if s.ES != nil {
		items, err = s.searchES(ctx, keyword, from, size)
	} else {
		items, err = s.Repo.SearchProducts(ctx, keyword, from, size)
	}
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, service.ErrNoMatch
	}
	return items, nil
}

func (s *Service) searchES(ctx context.Context, keyword string, from, size int) ([]models.Product, error) {
	body := map[string]any{
		"query": map[string]any{
			"wildcard": map[string]any{
				"name": map[string]any{
					"value":            "*" + strings.ToLower(keyword) + "*",
					"case_insensitive": true,
				},
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return prods, nil
}
