package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerClientRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	FullName        string `json:"full_name" validate:"required,max=200"`
	Company         string `json:"company" validate:"max=200"`
	ProfilePhotoURL string `json:"profile_photo_url" validate:"omitempty,url"`
}

type registerFreelancerRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8,max=72"`
	FullName        string   `json:"full_name" validate:"required,max=200"`
	Bio             string   `json:"bio" validate:"max=5000"`
	Skills          string   `json:"skills" validate:"max=1000"`
	Categories      []string `json:"categories" validate:"max=20,dive,max=100"`
	Whatsapp        string   `json:"whatsapp" validate:"max=50"`
	ContactEmail    string   `json:"contact_email" validate:"omitempty,email"`
	ProfilePhotoURL string   `json:"profile_photo_url" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID int64  `json:"user_id"`
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{Token: r.Token, Role: string(r.Role), UserID: r.UserID}
}

// RegisterClient creates a client account and its profile.
//
// @Summary      Register a client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerClientRequest  true  "Client account and profile"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/auth/register/client [post]
func (h *AuthHandler) RegisterClient(c echo.Context) error {
	var req registerClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.RegisterClient(c.Request().Context(), ports.RegisterClientInput{
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		Company:         req.Company,
		ProfilePhotoURL: req.ProfilePhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// RegisterFreelancer creates a freelancer account and its profile.
//
// @Summary      Register a freelancer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerFreelancerRequest  true  "Freelancer account and profile"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/auth/register/freelancer [post]
func (h *AuthHandler) RegisterFreelancer(c echo.Context) error {
	var req registerFreelancerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.RegisterFreelancer(c.Request().Context(), ports.RegisterFreelancerInput{
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		Bio:             req.Bio,
		Skills:          req.Skills,
		CategoryNames:   req.Categories,
		Whatsapp:        req.Whatsapp,
		ContactEmail:    req.ContactEmail,
		ProfilePhotoURL: req.ProfilePhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}
