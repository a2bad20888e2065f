package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cuadros-neon-backend/internal/domains/catalog"
	"cuadros-neon-backend/internal/domains/catalog/hybrid"
	"cuadros-neon-backend/internal/domains/catalog/service"
	"cuadros-neon-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CatalogHandler struct {
	service  service.CatalogService
	selector *hybrid.Selector
}

func NewCatalogHandler(svc service.CatalogService, selector *hybrid.Selector) *CatalogHandler {
	return &CatalogHandler{
		service:  svc,
		selector: selector,
	}
}

// mapError traduce errores del dominio a HTTP.
func mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrEntryNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidEntry):
		response.BadRequest(c, err.Error())
	case catalog.IsFeaturedLimit(err):
		response.Conflict(c, err.Error())
	case errors.Is(err, catalog.ErrBackendUnavailable):
		response.ErrorResponse(c, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE", err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// ========== GET /v1/catalog — listado híbrido ==========
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	result, err := h.selector.Catalog(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Entries, &response.Meta{
		Total:  len(result.Entries),
		Source: string(result.Source),
	})
}

// ========== GET /v1/catalog/products — proyección legacy ==========
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	result, err := h.selector.Catalog(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	products := make([]catalog.ProductView, 0, len(result.Entries))
	for _, e := range result.Entries {
		products = append(products, catalog.ToProductView(e))
	}

	response.SuccessWithMeta(c, http.StatusOK, products, &response.Meta{
		Total:  len(products),
		Source: string(result.Source),
	})
}

// ========== GET /v1/catalog/featured ==========
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	result, err := h.selector.Featured(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Entries, &response.Meta{
		Total:  len(result.Entries),
		Source: string(result.Source),
	})
}

// ========== GET /v1/catalog/search?q= ==========
func (h *CatalogHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))

	entries, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, entries, &response.Meta{Total: len(entries)})
}

// ========== GET /v1/catalog/stats ==========
func (h *CatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ========== GET /v1/catalog/:id — búsqueda híbrida por id ==========
func (h *CatalogHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	entry, _, err := h.selector.EntryByID(c.Request.Context(), id)
	if err != nil {
		mapError(c, err)
		return
	}
	if entry == nil {
		response.NotFound(c, "catalog entry not found")
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// ============================================================
// ADMIN
// ============================================================

// ========== POST /v1/admin/catalog ==========
func (h *CatalogHandler) Create(c *gin.Context) {
	var req catalog.CreateEntryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// ========== PATCH /v1/admin/catalog/:id ==========
func (h *CatalogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req catalog.UpdateEntryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// ========== DELETE /v1/admin/catalog/:id — idempotente ==========
func (h *CatalogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// ========== PUT /v1/admin/catalog/:id/featured ==========
func (h *CatalogHandler) SetFeatured(c *gin.Context) {
	id := c.Param("id")

	var req catalog.SetFeaturedRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetFeatured(c.Request.Context(), id, req.IsFeatured); err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "isFeatured": req.IsFeatured})
}

// ========== PUT /v1/admin/catalog/:id/active ==========
func (h *CatalogHandler) SetActive(c *gin.Context) {
	id := c.Param("id")

	var req catalog.SetActiveRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, req.IsActive); err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "isActive": req.IsActive})
}

// ========== PUT /v1/admin/catalog/reorder — todo o nada ==========
func (h *CatalogHandler) Reorder(c *gin.Context) {
	var req catalog.ReorderRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Reorder(c.Request.Context(), req); err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reordered": len(req.Orders)})
}

// ========== GET /v1/admin/catalog/next-order-index ==========
func (h *CatalogHandler) NextOrderIndex(c *gin.Context) {
	next, err := h.service.NextOrderIndex(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"nextOrderIndex": next})
}

// ========== GET /v1/admin/catalog — listado completo sin híbrido ==========
func (h *CatalogHandler) AdminList(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context(),
		catalog.Filters{},
		catalog.Sort{Field: catalog.SortByOrderIndex},
	)
	if err != nil {
		mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, entries, &response.Meta{
		Total:  len(entries),
		Source: string(catalog.SourceLive),
	})
}
