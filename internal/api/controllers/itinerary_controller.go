package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/internal/services"
	"tripweave/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Create godoc
// @Summary Create an itinerary
// @Description Persist a draft itinerary with its agenda items and return the short code plus the agenda-to-file correlation table
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary payload"
// @Success 200 {object} response_models.SubmitItineraryResponse
// @Security BearerAuth
// @Router /itinerary [post]
func (i *ItineraryController) Create(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := i.itineraryService.CreateItinerary(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary created successfully")
}

// Update godoc
// @Summary Update an itinerary
// @Description Apply agenda deletions, updates and inserts to an existing itinerary addressed by session id
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ItineraryRequest true "Itinerary payload"
// @Success 200 {object} response_models.SubmitItineraryResponse
// @Security BearerAuth
// @Router /itinerary/edit/{sessionId} [post]
func (i *ItineraryController) Update(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := i.itineraryService.UpdateItinerary(c.Request.Context(), c.GetString("user_id"), sessionID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary updated successfully")
}

// GetBySessionID godoc
// @Summary Retrieve an itinerary
// @Description Fetch a full itinerary by session id or short code; authenticated lookups are recorded as recent searches
// @Tags Itinerary
// @Produce json
// @Param sessionId path string true "Session ID or short code"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Router /itinerary/{sessionId} [get]
func (i *ItineraryController) GetBySessionID(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	resp, err := i.itineraryService.GetBySessionID(c.Request.Context(), sessionID, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary fetched successfully")
}

// Challenge godoc
// @Summary Check edit permission
// @Description Reports whether the caller may edit the itinerary behind the session id
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ChallengeRequest true "Challenge payload"
// @Success 200 {object} response_models.PermissionResponse
// @Security BearerAuth
// @Router /itinerary/challenge [post]
func (i *ItineraryController) Challenge(c *gin.Context) {
	var req request_models.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hasPermission, err := i.itineraryService.CheckEditPermission(c.Request.Context(), c.GetString("user_id"), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PermissionResponse{HasPermission: hasPermission}, "Permission checked")
}

// AddCollaborator godoc
// @Summary Add a collaborator
// @Description Grant another registered account edit access to the itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.AddCollaboratorRequest true "Collaborator payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/add-collaborator [post]
func (i *ItineraryController) AddCollaborator(c *gin.Context) {
	var req request_models.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := i.itineraryService.AddCollaborator(c.Request.Context(), c.GetString("user_id"), req.SessionID, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Collaborator added successfully")
}
