package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mkuznecov/shopify_ecom/internal/es"
	"github.com/mkuznecov/shopify_ecom/internal/logging"
	"github.com/mkuznecov/shopify_ecom/internal/models"
	"github.com/mkuznecov/shopify_ecom/internal/mykafka"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Indexer  *es.Indexer
	Producer *mykafka.Producer
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create resolves the acting user from the verified token claim and records
// it as the owner of the new product.
func (s *CatalogService) Create(ctx context.Context, req transport.CreateProductRequest, callerEmail string) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if req.Name == "" || req.Image == "" || req.Description == "" || req.Price < 0 {
		return nil, ErrValidation
	}

	owner, err := s.Repo.GetUserByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotRegistered
		}
		return nil, err
	}

	prod := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Brand:       req.Brand,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
		UserID:      owner.ID,
	}

	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		l.Error("product_create_error", "status", 500, "error", err)
		return nil, err
	}

	s.index(ctx, &prod)
	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	return &prod, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.update")

	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		prod.Price = *req.Price
	}
	if req.Brand != nil {
		prod.Brand = *req.Brand
	}
	if req.Stock != nil {
		prod.Stock = *req.Stock
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		l.Error("product_patch_error", "status", 500, "error", err)
		return nil, err
	}

	s.index(ctx, prod)
	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	return prod, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.delete")

	prod, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		l.Error("product_delete_error", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Indexer.DeleteProduct(ctx, id); err != nil {
		l.Error("es delete error", "productID", id, "error", err)
	}
	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return prod, nil
}

func (s *CatalogService) index(ctx context.Context, prod *models.Product) {
	if err := s.Indexer.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Error("es index error", "productID", prod.ID, "error", err)
	}
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pctx, "product_events", key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", "product_events", "error", err)
	}
}
