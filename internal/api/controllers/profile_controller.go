package controllers

import (
	"github.com/gin-gonic/gin"

	"tripweave/internal/services"
	"tripweave/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// Info godoc
// @Summary Profile info
// @Description Fetch the caller's profile and last login time
// @Tags Profile
// @Produce json
// @Success 200 {object} response_models.ProfileInfoResponse
// @Security BearerAuth
// @Router /profile/info [get]
func (p *ProfileController) Info(c *gin.Context) {
	info, err := p.profileService.GetInfo(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Profile fetched successfully")
}

// RecentSearches godoc
// @Summary Recent searches
// @Description Fetch the caller's recent itinerary lookups joined with itinerary summaries
// @Tags Profile
// @Produce json
// @Success 200 {array} response_models.RecentSearchResponse
// @Security BearerAuth
// @Router /profile/recent-search [get]
func (p *ProfileController) RecentSearches(c *gin.Context) {
	searches, err := p.profileService.RecentSearches(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, searches, "Recent searches fetched successfully")
}
