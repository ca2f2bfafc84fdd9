package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/mkuznecov/shopify_ecom/internal/models"
)

// Indexer mirrors catalog mutations into the product index. All calls are
// best-effort: the database row is the source of truth.
type Indexer struct {
	Client *elasticsearch.Client
	Index  string
}

func (i *Indexer) IndexProduct(ctx context.Context, prod *models.Product) error {
	if i == nil || i.Client == nil {
		return nil
	}

	data, err := json.Marshal(prod)
	if err != nil {
		return fmt.Errorf("es index: %w", err)
	}

	res, err := i.Client.Index(
		i.Index,
		bytes.NewReader(data),
		i.Client.Index.WithDocumentID(fmt.Sprint(prod.ID)),
		i.Client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

func (i *Indexer) DeleteProduct(ctx context.Context, id uint) error {
	if i == nil || i.Client == nil {
		return nil
	}

	res, err := i.Client.Delete(
		i.Index,
		fmt.Sprint(id),
		i.Client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es delete: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}
