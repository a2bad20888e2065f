package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuadros-neon-backend/internal/domains/catalog"
)

type fakeBlobs struct {
	objects  map[string][]byte
	uploads  []string
	prefixes []string
}

func newFakeBlobs() *fakeBlobs { return &fakeBlobs{objects: map[string][]byte{}} }

func (b *fakeBlobs) Download(_ context.Context, key string) ([]byte, error) {
	return b.objects[key], nil
}

func (b *fakeBlobs) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	b.objects[key] = data
	b.uploads = append(b.uploads, key)
	return key, nil
}

func (b *fakeBlobs) DeleteByPrefix(_ context.Context, prefix string) error {
	b.prefixes = append(b.prefixes, prefix)
	return nil
}

type fakeProcessor struct{}

func (fakeProcessor) ProcessImage(_ []byte) (map[string][]byte, error) {
	return map[string][]byte{
		"large":     []byte("L"),
		"medium":    []byte("M"),
		"thumbnail": []byte("T"),
	}, nil
}

func TestVariantKey(t *testing.T) {
	assert.Equal(t,
		"gallery/e1/abc_large.jpg",
		variantKey("gallery/e1/abc_original.jpg", "large"))
	assert.Equal(t,
		"gallery/e1/foo.png_thumbnail.jpg",
		variantKey("gallery/e1/foo.png", "thumbnail"))
}

func TestProcessImageHandler(t *testing.T) {
	blobs := newFakeBlobs()
	blobs.objects["gallery/e1/abc_original.jpg"] = []byte("original")

	h := NewProcessImageHandler(blobs, fakeProcessor{})

	task, err := NewImageProcessTask("e1", "gallery/e1/abc_original.jpg")
	require.NoError(t, err)

	require.NoError(t, h.ProcessTask(context.Background(), task))

	assert.Len(t, blobs.uploads, 3)
	assert.Contains(t, blobs.objects, "gallery/e1/abc_large.jpg")
	assert.Contains(t, blobs.objects, "gallery/e1/abc_medium.jpg")
	assert.Contains(t, blobs.objects, "gallery/e1/abc_thumbnail.jpg")
}

func TestProcessImageHandler_BadPayload(t *testing.T) {
	h := NewProcessImageHandler(newFakeBlobs(), fakeProcessor{})
	task := asynq.NewTask(TypeImageProcess, []byte("not json"))

	assert.Error(t, h.ProcessTask(context.Background(), task))
}

func TestCleanupHandler(t *testing.T) {
	blobs := newFakeBlobs()
	h := NewCleanupHandler(blobs)

	task, err := NewImageCleanupTask("entry-9")
	require.NoError(t, err)

	require.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Equal(t, []string{"gallery/entry-9/"}, blobs.prefixes)
}

func TestNormalizeRefs(t *testing.T) {
	tests := []struct {
		name        string
		refs        []string
		want        []string
		wantChanged bool
	}{
		{
			"legacy local paths rewritten",
			[]string{"/images/pizza.jpeg", "images/vela.jpeg"},
			[]string{"gallery/pizza.jpeg", "gallery/vela.jpeg"},
			true,
		},
		{
			"urls and normalized keys untouched",
			[]string{"https://x.com/a.jpg", "gallery/b.jpg", ""},
			[]string{"https://x.com/a.jpg", "gallery/b.jpg", ""},
			false,
		},
		{
			"bare filename gets the prefix",
			[]string{"pizza.jpg"},
			[]string{"gallery/pizza.jpg"},
			true,
		},
		{
			"mixed",
			[]string{"https://x.com/a.jpg", "/images/b.jpeg"},
			[]string{"https://x.com/a.jpg", "gallery/b.jpeg"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeRefs(tt.refs)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

type fakeRepo struct {
	raws    []catalog.RawEntry
	patches map[string]catalog.Record
}

func (f *fakeRepo) List(_ context.Context, _ catalog.Filters, _ catalog.Sort) ([]catalog.RawEntry, error) {
	return f.raws, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]catalog.RawEntry, error) { return f.raws, nil }

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*catalog.RawEntry, error) {
	return nil, nil
}

func (f *fakeRepo) Create(_ context.Context, _ catalog.Record) (*catalog.RawEntry, error) {
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, patch catalog.Record) (*catalog.RawEntry, error) {
	if f.patches == nil {
		f.patches = map[string]catalog.Record{}
	}
	f.patches[id] = patch
	return &catalog.RawEntry{ID: id, Record: patch}, nil
}

func (f *fakeRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeRepo) SetFeatured(_ context.Context, _ string, _ bool) error { return nil }

func (f *fakeRepo) Reorder(_ context.Context, _ []catalog.EntryOrder) error { return nil }

func (f *fakeRepo) NextOrderIndex(_ context.Context) (int, error) { return 0, nil }

func (f *fakeRepo) CountFeatured(_ context.Context) (int, error) { return 0, nil }

func TestRefreshHandler(t *testing.T) {
	legacy := []string{"/images/pizza.jpeg"}
	clean := []string{"gallery/ok.jpg"}

	now := time.Now()
	repo := &fakeRepo{raws: []catalog.RawEntry{
		{ID: "legacy", Record: catalog.Record{Imagenes: &legacy}, CreatedAt: now, UpdatedAt: now},
		{ID: "clean", Record: catalog.Record{Imagenes: &clean}, CreatedAt: now, UpdatedAt: now},
	}}

	h := NewRefreshHandler(repo)
	task := NewImageRefreshTask()

	require.NoError(t, h.ProcessTask(context.Background(), task))

	// solo el documento legacy se parchea, y la pasada es idempotente
	require.Len(t, repo.patches, 1)
	require.NotNil(t, repo.patches["legacy"].Imagenes)
	assert.Equal(t, []string{"gallery/pizza.jpeg"}, *repo.patches["legacy"].Imagenes)
}

func TestTaskPayloads(t *testing.T) {
	task, err := NewImageProcessTask("e1", "gallery/e1/x_original.jpg")
	require.NoError(t, err)
	assert.Equal(t, TypeImageProcess, task.Type())

	var payload ImageProcessPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "e1", payload.EntryID)
	assert.Equal(t, "gallery/e1/x_original.jpg", payload.ImageKey)
}
