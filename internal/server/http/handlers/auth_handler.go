package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
	"github.com/polkiloo/canteen/internal/usecase"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, messages{domainErrors.ErrAlreadyExists: "Email already registered"})
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Registration successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// StaffLogin handles POST /api/auth/staff-login.
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req dto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	token, err := h.facade.StaffLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, messages{domainErrors.ErrInvalidCredentials: "Invalid staff credentials"})
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.StaffAuthResponse{
		Message: "Staff login successful",
		Token:   token,
		Staff:   dto.StaffResponse{Username: h.facade.StaffUsername(), Role: "admin"},
	})
}

// Verify handles GET /api/auth/verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	identity := CurrentIdentity(c)
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Valid:  true,
		UserID: identity.Subject(),
		Role:   identity.Role(),
	})
}

func toUserResponse(u *model.User) dto.UserResponse {
	if u == nil {
		return dto.UserResponse{}
	}
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
