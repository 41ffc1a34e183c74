package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"voya/internal/services"
	"voya/pkg/utils"
)

type FileController struct {
	fileService services.FileServiceInterface
}

func NewFileController(fileService services.FileServiceInterface) *FileController {
	return &FileController{
		fileService: fileService,
	}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Upload an image and return its hosted URL
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /files/upload [post]
func (f *FileController) UploadImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read image file")
		return
	}

	url, err := f.fileService.UploadImage(c.Request.Context(), data, fileHeader.Filename, c.PostForm("folder"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Image uploaded successfully")
}
