package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweave/internal/models/request_models"
	"tripweave/internal/services"
	"tripweave/pkg/utils"
)

type FileController struct {
	fileService services.FileServiceInterface
}

func NewFileController(fileService services.FileServiceInterface) *FileController {
	return &FileController{
		fileService: fileService,
	}
}

// Create godoc
// @Summary Attach a file to an agenda item
// @Description Persist attachment metadata under the resolved agenda id
// @Tags File
// @Accept json
// @Produce json
// @Param request body request_models.FileCreateRequest true "File payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /file [post]
func (f *FileController) Create(c *gin.Context) {
	var req request_models.FileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.fileService.CreateFile(c.Request.Context(), c.GetString("user_id"), &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "File stored successfully")
}

// Delete godoc
// @Summary Delete files
// @Description Remove attachments by their uuids
// @Tags File
// @Accept json
// @Produce json
// @Param request body request_models.FileDeleteRequest true "Deletion payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /file/delete [post]
func (f *FileController) Delete(c *gin.Context) {
	var req request_models.FileDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.fileService.DeleteFiles(c.Request.Context(), c.GetString("user_id"), req.FileIDsToDelete); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Files deleted successfully")
}
