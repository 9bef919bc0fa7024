package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/middleware"
	"github.com/rohannso/Quiz-backend/internal/service"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register an admin user
// @Description Creates an admin-capable user and returns its bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, token, err := c.authService.Register(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register user"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Admin user created successfully",
		Token:   token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

// Login godoc
// @Summary Log in as an admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Please provide both username and password"})
		return
	}

	user, token, err := c.authService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
		case errors.Is(err, service.ErrAdminOnly):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Only admin users can login"})
		default:
			log.Error().Err(err).Str("username", req.Username).Msg("Login: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Logout godoc
// @Summary Log out, revoking the caller's token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	key := ctx.GetString(middleware.TokenKeyKey)
	if err := c.authService.Logout(key); err != nil {
		log.Error().Err(err).Msg("Logout: failed to revoke token")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
