package media

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicfix/internal/pkg/cloudinary"
	"github.com/opencivic/civicfix/internal/pkg/response"
)

// MaxImagesPerUpload caps one report's photo set
const MaxImagesPerUpload = 5

// Handler handles image uploads for reports
type Handler struct {
	uploads *cloudinary.Service
}

func NewHandler(uploads *cloudinary.Service) *Handler {
	return &Handler{uploads: uploads}
}

// UploadResponse carries the hosted URLs for an uploaded photo set.
// URL is the comma-joined form the reports endpoint accepts.
type UploadResponse struct {
	URLs []string `json:"urls"`
	URL  string   `json:"url"`
}

// Upload godoc
// @Summary Upload report images
// @Description Accepts up to five images under the "images" form field
// @Description and returns their hosted URLs.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form", "INVALID_FORM")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.BadRequest(c, "At least one image is required", "NO_IMAGES")
		return
	}
	if len(files) > MaxImagesPerUpload {
		response.BadRequest(c, "Too many images in one upload", "TOO_MANY_IMAGES")
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		if err := cloudinary.ValidateImageFile(header); err != nil {
			response.BadRequest(c, err.Error(), "INVALID_IMAGE")
			return
		}

		file, err := header.Open()
		if err != nil {
			response.InternalServerError(c, "Failed to read uploaded file")
			return
		}

		result, err := h.uploads.UploadImage(c.Request.Context(), file, header.Filename)
		file.Close()
		if err != nil {
			response.ServiceUnavailable(c, "Image hosting is temporarily unavailable", "UPLOAD_FAILED")
			return
		}

		urls = append(urls, result.URL)
	}

	response.Created(c, UploadResponse{
		URLs: urls,
		URL:  strings.Join(urls, ","),
	})
}
