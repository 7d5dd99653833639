package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/dto"
	"github.com/SscSPs/price_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgRegistered          = "Registration successful"
	msgLoggedIn            = "Login successful"
	msgCredentialsRequired = "Username and password are required"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
)

// authHandler handles registration and login.
type authHandler struct {
	userService portssvc.UserSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{
		userService: us,
	}
}

// registerAuthRoutes sets up the public authentication routes behind limit.
func registerAuthRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, limit gin.HandlerFunc) {
	h := newAuthHandler(userService)

	rg.POST("/register/", limit, h.register)
	rg.POST("/login/", limit, h.login)
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or username taken"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /register/ [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid register request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: registerBindMessage(err)})
		return
	}

	res, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Registration failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.Int64("user_id", res.User.UserID))
	c.JSON(http.StatusCreated, dto.ToAuthResponse(msgRegistered, res))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /login/ [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	res, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(msgLoggedIn, res))
}

// registerBindMessage picks the client message for a register binding failure.
func registerBindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.StructField() == "Password" && fe.Tag() == "max" {
				return msgPasswordTooLong
			}
		}
	}
	return msgCredentialsRequired
}
