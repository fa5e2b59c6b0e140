package controller

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/middleware"
	"github.com/alimikegami/velvet-storefront/internal/service"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type BlogController struct {
	service service.BlogService
}

func CreateBlogController(g *echo.Group, admin *echo.Group, service service.BlogService) {
	bc := BlogController{
		service: service,
	}

	g.GET("/blog", bc.GetBlogPosts)
	g.GET("/blog/:slug", bc.GetBlogPost)

	blog := admin.Group("/blog", middleware.RequireTab(domain.TabBlog))
	blog.POST("", bc.AddBlogPost)
	blog.PUT("/:id", bc.UpdateBlogPost)
	blog.DELETE("/:id", bc.DeleteBlogPost)
}

func (c *BlogController) GetBlogPosts(e echo.Context) error {
	resp, err := c.service.GetBlogPosts(e.Request().Context())
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *BlogController) GetBlogPost(e echo.Context) error {
	resp, err := c.service.GetBlogPost(e.Request().Context(), e.Param("slug"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *BlogController) AddBlogPost(e echo.Context) error {
	payload := domain.BlogPost{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddBlogPost").Msg("")
	}

	resp, err := c.service.AddBlogPost(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "Post published", resp)
}

func (c *BlogController) UpdateBlogPost(e echo.Context) error {
	payload := domain.BlogPost{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBlogPost").Msg("")
	}

	resp, err := c.service.UpdateBlogPost(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Post updated", resp)
}

func (c *BlogController) DeleteBlogPost(e echo.Context) error {
	err := c.service.DeleteBlogPost(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Post deleted", nil)
}
