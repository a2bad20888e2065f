package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cuadros-neon-backend/internal/domains/catalog/service"
	"cuadros-neon-backend/internal/shared/response"
)

// UploadHandler recibe imágenes del panel admin vía multipart.
type UploadHandler struct {
	service service.CatalogService
}

func NewUploadHandler(svc service.CatalogService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// ========== POST /v1/admin/catalog/:id/images ==========
// Campo multipart "image". Devuelve el key guardable en el documento.
func (h *UploadHandler) Upload(c *gin.Context) {
	entryID := c.Param("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "cannot read image file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.service.UploadImage(c.Request.Context(), entryID, data, contentType)
	if err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"key": key})
}
