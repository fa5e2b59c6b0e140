package controller

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/middleware"
	"github.com/alimikegami/velvet-storefront/internal/service"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, account *echo.Group, admin *echo.Group, service service.UserService) {
	uc := UserController{
		service: service,
	}

	g.POST("/auth/register", uc.Register)
	g.POST("/auth/verify", uc.VerifyRegistration)
	g.POST("/auth/login", uc.Login)

	account.GET("/me", uc.Me)

	users := admin.Group("/users", middleware.RequireTab(domain.TabUsers))
	users.GET("", uc.GetUsers)
	users.POST("", uc.CreateUser)
	users.DELETE("/:id", uc.DeleteUser)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	if resp.VerificationRequired {
		return response.WriteAcceptedResponse(e, "Verification code sent", resp)
	}

	return response.WriteCreatedResponse(e, "Account created", resp)
}

func (c *UserController) VerifyRegistration(e echo.Context) error {
	payload := dto.VerifyRegistrationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "VerifyRegistration").Msg("")
	}

	resp, err := c.service.VerifyRegistration(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "Account created", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) Me(e echo.Context) error {
	session, ok := middleware.Session(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	return response.WriteSuccessResponse(e, "", map[string]interface{}{
		"id":           session.UserID,
		"name":         session.Name,
		"email":        session.Email,
		"role":         session.Role,
		"allowed_tabs": domain.AllowedTabs(domain.Role(session.Role)),
	})
}

func (c *UserController) GetUsers(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
	}

	resp, err := c.service.GetUsers(e.Request().Context(), filter)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) CreateUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateUser").Msg("")
	}

	resp, err := c.service.CreateUser(e.Request().Context(), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "User created", resp)
}

func (c *UserController) DeleteUser(e echo.Context) error {
	session, _ := middleware.Session(e)

	err := c.service.DeleteUser(e.Request().Context(), session.UserID, e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "User deleted", nil)
}
