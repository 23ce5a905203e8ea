package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/internal/services"
	"tripweave/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account and return a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{Token: token}, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{Token: token}, "Login successful")
}

// Authenticate godoc
// @Summary Check whether an identity is registered
// @Description Tells the client if the identity should go through login or registration
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.AuthenticateRequest true "Identity probe payload"
// @Success 200 {object} utils.APIResponse
// @Router /auth/authenticate [post]
func (a *AuthController) Authenticate(c *gin.Context) {
	var req request_models.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	exist, err := a.accountService.Exists(c.Request.Context(), req.Identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ExistResponse{Exist: exist}, "Identity checked")
}

// VerifyToken godoc
// @Summary Verify a token
// @Description Reports whether the submitted token is still valid
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.VerifyTokenRequest true "Token verification payload"
// @Success 200 {object} utils.APIResponse
// @Router /auth/verification [post]
func (a *AuthController) VerifyToken(c *gin.Context) {
	var req request_models.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	valid := a.accountService.VerifyToken(req.Token)
	utils.RespondSuccess(c, response_models.ValidResponse{Valid: valid}, "Token checked")
}
