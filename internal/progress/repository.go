package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/survey"
)

// Durable keys shared with every survey client.
const (
	KeyInProgress = "inProgress"
	KeyData       = "b5data"
	KeyResultID   = "resultId"

	inProgressValue = "true"
)

// Repository implements survey.ProgressRepository on top of a KV.
type Repository struct {
	kv  KV
	log *zap.Logger
}

var _ survey.ProgressRepository = (*Repository)(nil)

// NewRepository wraps kv. A nil logger discards output.
func NewRepository(kv KV, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{kv: kv, log: log}
}

// Load returns the saved snapshot. Any non-empty flag value marks a survey
// in progress. It returns nil without error when the flag is absent or empty,
// or the data key is missing.
func (r *Repository) Load(ctx context.Context) (*survey.Snapshot, error) {
	flag, ok, err := r.kv.Get(ctx, KeyInProgress)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyInProgress, err)
	}
	if !ok || flag == "" {
		return nil, nil
	}

	raw, ok, err := r.kv.Get(ctx, KeyData)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyData, err)
	}
	if !ok {
		r.log.Warn("in-progress flag set without data")
		return nil, nil
	}

	var snap survey.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyData, err)
	}
	return &snap, nil
}

// Save sets the in-progress flag, then writes the snapshot.
func (r *Repository) Save(ctx context.Context, snap survey.Snapshot) error {
	if snap.Answers == nil {
		snap.Answers = []survey.Answer{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.kv.Set(ctx, KeyInProgress, inProgressValue); err != nil {
		return fmt.Errorf("write %s: %w", KeyInProgress, err)
	}
	if err := r.kv.Set(ctx, KeyData, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", KeyData, err)
	}
	return nil
}

// Clear removes the in-progress flag and snapshot. The result id is kept.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyInProgress, KeyData); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

func (r *Repository) SaveResultID(ctx context.Context, id string) error {
	if err := r.kv.Set(ctx, KeyResultID, id); err != nil {
		return fmt.Errorf("write %s: %w", KeyResultID, err)
	}
	return nil
}

// ResultID returns the id of the last submitted result, or "" if none.
func (r *Repository) ResultID(ctx context.Context) (string, error) {
	id, _, err := r.kv.Get(ctx, KeyResultID)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", KeyResultID, err)
	}
	return id, nil
}
