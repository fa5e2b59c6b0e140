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

type StoreController struct {
	service service.StoreSyncService
}

func CreateStoreController(admin *echo.Group, service service.StoreSyncService) {
	sc := StoreController{
		service: service,
	}

	store := admin.Group("/store", middleware.RequireTab(domain.TabSystemConfig))
	store.GET("", sc.GetStoreStatus)
	store.PUT("/credentials", sc.SaveCredentials)
	store.POST("/load", sc.Load)
	store.POST("/save", sc.Save)
}

func (c *StoreController) GetStoreStatus(e echo.Context) error {
	resp, err := c.service.GetStoreStatus(e.Request().Context())
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *StoreController) SaveCredentials(e echo.Context) error {
	payload := dto.CredentialsRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SaveCredentials").Msg("")
	}

	resp, err := c.service.SaveCredentials(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Credentials saved", resp)
}

// Load and Save answer at once with a task id; the outcome is read from /admin/tasks/:id.
func (c *StoreController) Load(e echo.Context) error {
	return response.WriteAcceptedResponse(e, "Load started", c.service.StartLoad(e.Request().Context()))
}

func (c *StoreController) Save(e echo.Context) error {
	return response.WriteAcceptedResponse(e, "Save started", c.service.StartSave(e.Request().Context()))
}
