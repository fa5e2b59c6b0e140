package controller

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/middleware"
	"github.com/alimikegami/velvet-storefront/internal/service"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(g *echo.Group, admin *echo.Group, service service.CatalogService) {
	cc := CatalogController{
		service: service,
	}

	g.GET("/products", cc.GetProducts)
	g.GET("/products/:id", cc.GetProduct)
	g.GET("/categories", cc.GetCategories)

	products := admin.Group("/products", middleware.RequireTab(domain.TabProducts))
	products.POST("", cc.AddProduct)
	products.PUT("/:id", cc.UpdateProduct)
	products.DELETE("/:id", cc.DeleteProduct)

	categories := admin.Group("/categories", middleware.RequireTab(domain.TabCategories))
	categories.POST("", cc.AddCategory)
	categories.DELETE("/:name", cc.DeleteCategory)
}

func (c *CatalogController) GetProducts(e echo.Context) error {
	filter := dto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetProduct(e echo.Context) error {
	resp, err := c.service.GetProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "Product created", resp)
}

func (c *CatalogController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	resp, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Product updated", resp)
}

func (c *CatalogController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Product deleted", nil)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	err = c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "Category created", nil)
}

func (c *CatalogController) DeleteCategory(e echo.Context) error {
	err := c.service.DeleteCategory(e.Request().Context(), e.Param("name"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Category deleted", nil)
}
