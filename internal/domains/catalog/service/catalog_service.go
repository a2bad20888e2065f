package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"cuadros-neon-backend/internal/domains/catalog"
	"cuadros-neon-backend/internal/infrastructure/storage"
	pkgcache "cuadros-neon-backend/pkg/cache"
	"cuadros-neon-backend/pkg/logger"
)

// Cache keys del listado público. Se invalidan en bloque tras cada write.
const (
	cacheKeyPublic   = "catalog:public"
	cacheKeyFeatured = "catalog:featured"
	cachePattern     = "catalog:*"
)

// BlobStore es lo que el service necesita del storage de imágenes.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ImageValidator valida bytes de imagen antes de subirlos.
type ImageValidator interface {
	ValidateImage(data []byte) error
}

// ImageTaskEnqueuer despacha los jobs de imágenes al worker.
type ImageTaskEnqueuer interface {
	EnqueueImageProcess(ctx context.Context, entryID, imageKey string) error
	EnqueueImageCleanup(ctx context.Context, entryID string) error
}

type CatalogService interface {
	// Lecturas
	ListEntries(ctx context.Context, filters catalog.Filters, sortBy catalog.Sort) ([]catalog.Entry, error)
	ActiveEntries(ctx context.Context) ([]catalog.Entry, error)
	PublicEntries(ctx context.Context) ([]catalog.Entry, error)
	FeaturedEntries(ctx context.Context) ([]catalog.Entry, error)
	GetEntry(ctx context.Context, id string) (*catalog.Entry, error)
	Search(ctx context.Context, term string) ([]catalog.Entry, error)
	Stats(ctx context.Context) (catalog.Stats, error)
	NextOrderIndex(ctx context.Context) (int, error)

	// Escrituras del panel admin
	Create(ctx context.Context, req catalog.CreateEntryRequest) (*catalog.Entry, error)
	Update(ctx context.Context, id string, req catalog.UpdateEntryRequest) (*catalog.Entry, error)
	Delete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	SetActive(ctx context.Context, id string, active bool) error
	Reorder(ctx context.Context, req catalog.ReorderRequest) error

	UploadImage(ctx context.Context, entryID string, data []byte, contentType string) (string, error)
}

type catalogService struct {
	repo      catalog.Repository
	adapter   *catalog.Adapter
	cache     pkgcache.Cache
	cacheTTL  time.Duration
	blobs     BlobStore
	validator ImageValidator
	enqueuer  ImageTaskEnqueuer
}

func NewCatalogService(
	repo catalog.Repository,
	adapter *catalog.Adapter,
	cache pkgcache.Cache,
	cacheTTL time.Duration,
	blobs BlobStore,
	validator ImageValidator,
	enqueuer ImageTaskEnqueuer,
) CatalogService {
	return &catalogService{
		repo:      repo,
		adapter:   adapter,
		cache:     cache,
		cacheTTL:  cacheTTL,
		blobs:     blobs,
		validator: validator,
		enqueuer:  enqueuer,
	}
}

// ===== Lecturas =====

func (s *catalogService) ListEntries(ctx context.Context, filters catalog.Filters, sortBy catalog.Sort) ([]catalog.Entry, error) {
	raws, err := s.repo.List(ctx, filters, sortBy)
	if err != nil {
		return nil, err
	}
	return s.adapter.AdaptAll(ctx, raws), nil
}

func (s *catalogService) ActiveEntries(ctx context.Context) ([]catalog.Entry, error) {
	active := true
	return s.ListEntries(ctx,
		catalog.Filters{IsActive: &active},
		catalog.Sort{Field: catalog.SortByOrderIndex},
	)
}

// PublicEntries es el listado de la vitrina: activas, destacadas primero
// y después por orderIndex. Cacheado con TTL corto.
func (s *catalogService) PublicEntries(ctx context.Context) ([]catalog.Entry, error) {
	var cached []catalog.Entry
	if found, err := s.cache.Get(ctx, cacheKeyPublic, &cached); err == nil && found {
		return cached, nil
	}

	entries, err := s.ActiveEntries(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsFeatured != entries[j].IsFeatured {
			return entries[i].IsFeatured
		}
		return entries[i].OrderIndex < entries[j].OrderIndex
	})

	if err := s.cache.Set(ctx, cacheKeyPublic, entries, s.cacheTTL); err != nil {
		// Cache caída no bloquea la lectura.
		logger.Warn("PublicEntries: cache set failed", map[string]interface{}{"error": err.Error()})
	}

	return entries, nil
}

// FeaturedEntries: destacadas y activas por orderIndex, tope MaxFeatured.
func (s *catalogService) FeaturedEntries(ctx context.Context) ([]catalog.Entry, error) {
	var cached []catalog.Entry
	if found, err := s.cache.Get(ctx, cacheKeyFeatured, &cached); err == nil && found {
		return cached, nil
	}

	active, featured := true, true
	entries, err := s.ListEntries(ctx,
		catalog.Filters{IsActive: &active, IsFeatured: &featured},
		catalog.Sort{Field: catalog.SortByOrderIndex},
	)
	if err != nil {
		return nil, err
	}

	if len(entries) > catalog.MaxFeatured {
		entries = entries[:catalog.MaxFeatured]
	}

	if err := s.cache.Set(ctx, cacheKeyFeatured, entries, s.cacheTTL); err != nil {
		logger.Warn("FeaturedEntries: cache set failed", map[string]interface{}{"error": err.Error()})
	}

	return entries, nil
}

func (s *catalogService) GetEntry(ctx context.Context, id string) (*catalog.Entry, error) {
	raw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, catalog.ErrEntryNotFound
	}

	entry := s.adapter.Adapt(ctx, raw.ID, raw.Record, raw.CreatedAt, raw.UpdatedAt)
	return &entry, nil
}

// Search: substring case-insensitive sobre título y descripción de las activas.
// El catálogo es chico: filtrar en memoria sobre el listado ya adaptado alcanza.
func (s *catalogService) Search(ctx context.Context, term string) ([]catalog.Entry, error) {
	entries, err := s.ActiveEntries(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return entries, nil
	}

	matched := []catalog.Entry{}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) {
			matched = append(matched, e)
		}
	}

	return matched, nil
}

func (s *catalogService) Stats(ctx context.Context) (catalog.Stats, error) {
	raws, err := s.repo.ListAll(ctx)
	if err != nil {
		return catalog.Stats{}, err
	}

	entries := s.adapter.AdaptAll(ctx, raws)
	return catalog.ComputeStats(entries, catalog.SourceLive), nil
}

func (s *catalogService) NextOrderIndex(ctx context.Context) (int, error) {
	return s.repo.NextOrderIndex(ctx)
}

// ===== Escrituras =====

// Create persiste con el vocabulario de escritura canónico (las claves en
// español, las de mayor prioridad), así el documento se re-adapta idéntico.
func (s *catalogService) Create(ctx context.Context, req catalog.CreateEntryRequest) (*catalog.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrInvalidEntry, err.Error())
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	storageCategory := catalog.CategoryStorageValue(req.Category)
	rec := catalog.Record{
		Nombre:      &req.Title,
		Descripcion: &req.Description,
		Precio:      &req.Price,
		Imagenes:    &images,
		Categoria:   &storageCategory,
		Destacado:   &req.IsFeatured,
		IsActive:    &active,
		OrderIndex:  req.OrderIndex,
	}

	if req.IsFeatured {
		count, err := s.repo.CountFeatured(ctx)
		if err != nil {
			return nil, err
		}
		if err := catalog.CheckFeaturedCapacity(count); err != nil {
			return nil, err
		}
	}

	raw, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	entry := s.adapter.Adapt(ctx, raw.ID, raw.Record, raw.CreatedAt, raw.UpdatedAt)
	return &entry, nil
}

func (s *catalogService) Update(ctx context.Context, id string, req catalog.UpdateEntryRequest) (*catalog.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrInvalidEntry, err.Error())
	}
	if req.IsEmpty() {
		return s.GetEntry(ctx, id)
	}

	// Un solo patch, un solo write. El flag de destacado viaja adentro:
	// el repositorio lo resuelve con lock y chequeo de tope en la misma
	// transacción que el resto del patch.
	patch := catalog.Record{
		Nombre:      req.Title,
		Descripcion: req.Description,
		Precio:      req.Price,
		Destacado:   req.IsFeatured,
		IsActive:    req.IsActive,
		OrderIndex:  req.OrderIndex,
	}
	if req.Images != nil {
		// Puntero aparte: un `"images": []` explícito limpia las imágenes.
		patch.Imagenes = &req.Images
	}
	if req.Category != nil {
		storageCategory := catalog.CategoryStorageValue(*req.Category)
		patch.Categoria = &storageCategory
	}

	raw, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	entry := s.adapter.Adapt(ctx, raw.ID, raw.Record, raw.CreatedAt, raw.UpdatedAt)
	return &entry, nil
}

// Delete borra el documento y despacha la limpieza de blobs al worker.
// Idempotente de punta a punta.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)

	if err := s.enqueuer.EnqueueImageCleanup(ctx, id); err != nil {
		// La limpieza de blobs es best-effort: el borrado ya está hecho.
		logger.Warn("Delete: cleanup enqueue failed", map[string]interface{}{
			"entry_id": id,
			"error":    err.Error(),
		})
	}

	return nil
}

func (s *catalogService) SetFeatured(ctx context.Context, id string, featured bool) error {
	if err := s.repo.SetFeatured(ctx, id, featured); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) SetActive(ctx context.Context, id string, active bool) error {
	patch := catalog.Record{IsActive: &active}
	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) Reorder(ctx context.Context, req catalog.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", catalog.ErrInvalidEntry, err.Error())
	}

	if err := s.repo.Reorder(ctx, req.Orders); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// UploadImage valida, sube el original bajo gallery/<entry>/ y encola la
// generación de variantes. Devuelve el key guardable en el documento.
func (s *catalogService) UploadImage(ctx context.Context, entryID string, data []byte, contentType string) (string, error) {
	if err := s.validator.ValidateImage(data); err != nil {
		return "", fmt.Errorf("%w: %s", catalog.ErrInvalidEntry, err.Error())
	}

	key := fmt.Sprintf("%s%s/%s_original.jpg", storage.GalleryPrefix, entryID, uuid.New().String())
	if _, err := s.blobs.Upload(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if err := s.enqueuer.EnqueueImageProcess(ctx, entryID, key); err != nil {
		logger.Warn("UploadImage: variant enqueue failed", map[string]interface{}{
			"entry_id": entryID,
			"key":      key,
			"error":    err.Error(),
		})
	}

	return key, nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, cachePattern); err != nil {
		logger.Warn("cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
