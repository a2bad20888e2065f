package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Tipos de task del catálogo.
const (
	TypeImageProcess = "catalog:image:process"
	TypeImageCleanup = "catalog:image:cleanup"
	TypeImageRefresh = "catalog:image:refresh"
)

type ImageProcessPayload struct {
	EntryID  string `json:"entry_id"`
	ImageKey string `json:"image_key"`
}

type ImageCleanupPayload struct {
	EntryID string `json:"entry_id"`
}

func NewImageProcessTask(entryID, imageKey string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImageProcessPayload{EntryID: entryID, ImageKey: imageKey})
	if err != nil {
		return nil, fmt.Errorf("marshal image process payload: %w", err)
	}
	return asynq.NewTask(TypeImageProcess, payload, asynq.MaxRetry(3)), nil
}

func NewImageCleanupTask(entryID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImageCleanupPayload{EntryID: entryID})
	if err != nil {
		return nil, fmt.Errorf("marshal image cleanup payload: %w", err)
	}
	return asynq.NewTask(TypeImageCleanup, payload, asynq.MaxRetry(5)), nil
}

// NewImageRefreshTask no lleva payload: el handler barre todo el catálogo.
func NewImageRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeImageRefresh, nil, asynq.MaxRetry(1), asynq.Timeout(10*time.Minute))
}

// Enqueuer despacha tasks desde la API. Implementa la interfaz que espera
// el service sin que el service importe este package.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueImageProcess(ctx context.Context, entryID, imageKey string) error {
	task, err := NewImageProcessTask(entryID, imageKey)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue image process: %w", err)
	}
	return nil
}

func (e *Enqueuer) EnqueueImageCleanup(ctx context.Context, entryID string) error {
	task, err := NewImageCleanupTask(entryID)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue image cleanup: %w", err)
	}
	return nil
}
