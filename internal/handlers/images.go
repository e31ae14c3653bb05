package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"emoped-plan-backend/internal/apperrors"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/models"
	"emoped-plan-backend/internal/services"
)

type ImagesHandler struct {
	assets         *services.AssetService
	maxUploadBytes int64
	log            *slog.Logger
}

func NewImagesHandler(assets *services.AssetService, maxUploadBytes int64, log *slog.Logger) *ImagesHandler {
	return &ImagesHandler{
		assets:         assets,
		maxUploadBytes: maxUploadBytes,
		log:            logger.WithComponent(log, "http"),
	}
}

// UploadImage godoc
// @Summary     Upload an image
// @Description Stores an image for a product category. The declared content type must be image/*.
// @Description Also served at /images/upload, which accepts image_type and item_id as field names.
// @Tags        images
// @Accept      multipart/form-data
// @Produce     json
// @Param       file     formData file   true  "Image file"
// @Param       category formData string true  "equipment, emoped or battery"
// @Param       itemId   formData string false "Item the image belongs to"
// @Success     200 {object} models.ImageUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images [post]
func (h *ImagesHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "file too large"})
			return
		}
		respondError(c, h.log, apperrors.NewInvalidInputError("failed to parse multipart form"))
		return
	}

	var req models.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, h.log, apperrors.NewInvalidInputError("invalid form fields"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, h.log, apperrors.NewInvalidInputError("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, h.log, apperrors.NewInvalidInputError("failed to read file"))
		return
	}
	defer file.Close()

	ref, err := h.assets.Upload(c.Request.Context(), services.UploadInput{
		Data:         file,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Category:     req.CategoryValue(),
		ItemID:       req.ItemIDValue(),
		OriginalName: fileHeader.Filename,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.ImageUploadResponse{
		Success:  true,
		ImageURL: ref.URL,
		ImageID:  ref.ID,
	})
}

// ListImages godoc
// @Summary     List images in a category
// @Tags        images
// @Produce     json
// @Param       category query string true  "equipment, emoped or battery"
// @Param       itemId   query string false "Only images for this item"
// @Success     200 {object} models.ImageListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images [get]
func (h *ImagesHandler) ListImages(c *gin.Context) {
	var query models.ListImagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, h.log, apperrors.NewInvalidInputError("category is required"))
		return
	}

	images, err := h.assets.ListByCategory(c.Request.Context(), query.Category, query.ItemID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.ImageListResponse{Success: true, Data: images})
}

// GetImage godoc
// @Description Streams the stored bytes as an attachment named after the original upload, with the content type recorded at upload.
// @Description Streams the stored bytes with the content type recorded at upload.
// @Tags        images
// @Produce     image/jpeg,image/png,image/webp,image/gif
// @Param       id path string true "Image ID"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images/{id} [get]
func (h *ImagesHandler) GetImage(c *gin.Context) {
	dl, err := h.assets.Retrieve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer dl.Body.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": dl.OriginalName})
	if disposition == "" {
		disposition = "attachment"
	}

	c.DataFromReader(http.StatusOK, dl.Size, dl.MimeType, dl.Body, map[string]string{
		"Content-Disposition": disposition,
	})
}

// DeleteImage godoc
// @Summary     Delete an image
// @Tags        images
// @Produce     json
// @Param       id path string true "Image ID"
// @Success     200 {object} models.SuccessResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images/{id} [delete]
func (h *ImagesHandler) DeleteImage(c *gin.Context) {
	if err := h.assets.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
