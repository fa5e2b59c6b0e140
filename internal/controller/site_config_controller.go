package controller

import (
	"context"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/middleware"
	"github.com/alimikegami/velvet-storefront/internal/service"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type SiteConfigController struct {
	service service.SiteConfigService
}

func CreateSiteConfigController(g *echo.Group, admin *echo.Group, service service.SiteConfigService) {
	sc := SiteConfigController{
		service: service,
	}

	g.GET("/site-config", sc.GetSiteConfig)

	conf := admin.Group("/site-config")

	general := middleware.RequireTab(domain.TabGeneralInfo)
	conf.PUT("/general", update("UpdateGeneralInfo", sc.service.UpdateGeneralInfo), general)
	conf.PUT("/contact", update("UpdateContactInfo", sc.service.UpdateContactInfo), general)

	design := middleware.RequireTab(domain.TabStoreDesign)
	conf.PUT("/design", update("UpdateStoreDesign", sc.service.UpdateStoreDesign), design)
	conf.POST("/hero-slides", update("AddHeroSlide", sc.service.AddHeroSlide), design)
	conf.PUT("/hero-slides/:id", updateByID("UpdateHeroSlide", sc.service.UpdateHeroSlide), design)
	conf.DELETE("/hero-slides/:id", byID(sc.service.DeleteHeroSlide), design)
	conf.POST("/featured-categories", update("AddFeaturedCategory", sc.service.AddFeaturedCategory), design)
	conf.PUT("/featured-categories/:id", updateByID("UpdateFeaturedCategory", sc.service.UpdateFeaturedCategory), design)
	conf.DELETE("/featured-categories/:id", byID(sc.service.DeleteFeaturedCategory), design)
	conf.POST("/usps", update("AddUSP", sc.service.AddUSP), design)
	conf.PUT("/usps/:id", updateByID("UpdateUSP", sc.service.UpdateUSP), design)
	conf.DELETE("/usps/:id", byID(sc.service.DeleteUSP), design)

	system := middleware.RequireTab(domain.TabSystemConfig)
	conf.PUT("/smtp", update("UpdateSMTPSettings", sc.service.UpdateSMTPSettings), system)
	conf.PUT("/checkout", update("UpdateCheckoutSettings", sc.service.UpdateCheckoutSettings), system)

	reviews := middleware.RequireTab(domain.TabReviews)
	conf.POST("/testimonials", update("AddTestimonial", sc.service.AddTestimonial), reviews)
	conf.PUT("/testimonials/:id", updateByID("UpdateTestimonial", sc.service.UpdateTestimonial), reviews)
	conf.DELETE("/testimonials/:id", byID(sc.service.DeleteTestimonial), reviews)

	coupons := middleware.RequireTab(domain.TabCoupons)
	conf.POST("/coupons", update("AddCoupon", sc.service.AddCoupon), coupons)
	conf.PATCH("/coupons/:id/toggle", byID(sc.service.ToggleCoupon), coupons)
	conf.DELETE("/coupons/:id", byID(sc.service.DeleteCoupon), coupons)
}

// GetSiteConfig serves the storefront view of the config, without secrets.
func (c *SiteConfigController) GetSiteConfig(e echo.Context) error {
	resp, err := c.service.GetSiteConfig(e.Request().Context())
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp.Public())
}

func update[T any](component string, fn func(ctx context.Context, req T) (domain.SiteConfig, error)) echo.HandlerFunc {
	return func(e echo.Context) error {
		var payload T
		err := e.Bind(&payload)
		if err != nil {
			log.Error().Err(err).Str("component", component).Msg("")
		}

		resp, err := fn(e.Request().Context(), payload)
		if err != nil {
			return writeError(e, err)
		}

		return response.WriteSuccessResponse(e, "Site config updated", resp.Public())
	}
}

func updateByID[T any](component string, fn func(ctx context.Context, id string, req T) (domain.SiteConfig, error)) echo.HandlerFunc {
	return func(e echo.Context) error {
		var payload T
		err := e.Bind(&payload)
		if err != nil {
			log.Error().Err(err).Str("component", component).Msg("")
		}

		resp, err := fn(e.Request().Context(), e.Param("id"), payload)
		if err != nil {
			return writeError(e, err)
		}

		return response.WriteSuccessResponse(e, "Site config updated", resp.Public())
	}
}

func byID(fn func(ctx context.Context, id string) (domain.SiteConfig, error)) echo.HandlerFunc {
	return func(e echo.Context) error {
		resp, err := fn(e.Request().Context(), e.Param("id"))
		if err != nil {
			return writeError(e, err)
		}

		return response.WriteSuccessResponse(e, "Site config updated", resp.Public())
	}
}
