package authentication

import (
	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register
// @Summary Supplier / admin registration
// @Accept  json
// @Produce  json
// @Param registerRequest body RegisterRequest true "Registration"
// @Success 201 {object} LoginResponse
// @Router /auth/register [post]
func (h *Handler) registerHandler(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	res, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.CreatedResponse(c, res)
}

// Login
// @Summary User Login
// @Description User Login using email and password
// @Accept  json
// @Produce  json
// @Param loginRequest body LoginRequest true "Login Method"
// @Success 200 {object} LoginResponse
// @Router /auth/login [post]
func (h *Handler) loginHandler(c *fiber.Ctx) error {
	var req LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	res, err := h.service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, res)
}

func currentUser(c *fiber.Ctx) (string, error) {
	token, ok := helper.GetUserTokenValue(c)
	if !ok {
		return "", helper.Unauthorized("Request Unauthorized")
	}
	return token.UserId, nil
}

func (h *Handler) getProfileHandler(c *fiber.Ctx) error {
	id, err := currentUser(c)
	if err != nil {
		return err
	}
	u, err := h.service.Profile(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, u)
}

func (h *Handler) putProfileHandler(c *fiber.Ctx) error {
	id, err := currentUser(c)
	if err != nil {
		return err
	}
	u, err := h.service.UpdateProfile(c.UserContext(), id, c.Body())
	if err != nil {
		return err
	}
	return helper.SuccessResponse(c, u)
}

func (h *Handler) changePasswordHandler(c *fiber.Ctx) error {
	id, err := currentUser(c)
	if err != nil {
		return err
	}
	var req ChangePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := h.service.ChangePassword(c.UserContext(), id, req); err != nil {
		return err
	}
	return helper.SuccessResponse(c, "Password Updated")
}
