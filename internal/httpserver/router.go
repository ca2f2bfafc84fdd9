package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/mkuznecov/shopify_ecom/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *CatalogHTTP
	TokenMW        *authmw.TokenMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	e.GET("/products", d.ProductHandler.GetProducts)
	e.GET("/product/search/:keyword", d.ProductHandler.SearchProducts)

	private := e.Group("", d.TokenMW.RequireToken)
	private.GET("/product/:id", d.ProductHandler.GetProduct)
	private.POST("/add-product", d.ProductHandler.CreateProduct)
	private.PATCH("/product/edit/:id", d.ProductHandler.PatchProduct)
	private.DELETE("/product/delete/:id", d.ProductHandler.DeleteProduct)
}
