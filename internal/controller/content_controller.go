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

type ContentController struct {
	service service.ContentService
}

func CreateContentController(admin *echo.Group, service service.ContentService) {
	cc := ContentController{
		service: service,
	}

	admin.POST("/products/generate-description", cc.GenerateDescription, middleware.RequireTab(domain.TabProducts))
	admin.POST("/site-config/generate-tagline", cc.GenerateTagline, middleware.RequireTab(domain.TabStoreDesign))
	admin.GET("/tasks/:id", cc.GetTask)
}

func (c *ContentController) GenerateDescription(e echo.Context) error {
	payload := dto.GenerateDescriptionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GenerateDescription").Msg("")
	}

	return response.WriteAcceptedResponse(e, "Generation started", c.service.GenerateDescription(e.Request().Context(), payload))
}

func (c *ContentController) GenerateTagline(e echo.Context) error {
	return response.WriteAcceptedResponse(e, "Generation started", c.service.GenerateTagline(e.Request().Context()))
}

func (c *ContentController) GetTask(e echo.Context) error {
	resp, err := c.service.GetTask(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
