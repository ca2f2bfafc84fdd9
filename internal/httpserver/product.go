package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkuznecov/shopify_ecom/internal/logging"
	authmw "github.com/mkuznecov/shopify_ecom/internal/middleware/auth"
	"github.com/mkuznecov/shopify_ecom/internal/service"
	"github.com/mkuznecov/shopify_ecom/internal/service/search"
	"github.com/mkuznecov/shopify_ecom/internal/transport"
	"github.com/mkuznecov/shopify_ecom/internal/util"
)

type CatalogHTTP struct {
	Svc    *service.CatalogService
	Search *search.Service
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}
	return uint(id), nil
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get products")
	}

	l.Info("get_products_success", "count", len(items))
	return c.JSON(http.StatusOK, echo.Map{"products": items})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	keyword := c.Param("keyword")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	items, err := h.Search.Search(ctx, keyword, from, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "keyword is missing")
		case errors.Is(err, service.ErrNoMatch):
			l.Warn("search_no_match", "status", 404, "keyword", keyword)
			return echo.NewHTTPError(http.StatusNotFound, "No Product Found")
		default:
			l.Error("search_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
		}
	}

	l.Info("search_success", "keyword", keyword, "count", len(items))
	return c.JSON(http.StatusOK, echo.Map{"products": items})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "bad id")
		return err
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			l.Warn("get_product_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Create(ctx, req, authmw.CallerEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "some fields are missing")
		case errors.Is(err, service.ErrUserNotRegistered):
			return echo.NewHTTPError(http.StatusUnauthorized, "User does not exist. Please register first")
		default:
			l.Error("product_create_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product")
		}
	}

	l.Info("create_product_success", "productID", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *CatalogHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_patch_error", "status", 400, "reason", "bad id")
		return err
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			l.Warn("product_patch_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		default:
			l.Error("product_patch_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
		}
	}

	l.Info("patch_product_success", "productID", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "bad id")
		return err
	}

	prod, err := h.Svc.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	l.Info("delete_product_success", "productID", id)
	return c.JSON(http.StatusOK, prod)
}
