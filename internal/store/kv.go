package store

import (
	"context"
	"fmt"

	"github.com/abhisek/bigfive/ent"
	"github.com/abhisek/bigfive/ent/kv"
	"github.com/abhisek/bigfive/internal/progress"
)

// KV implements progress.KV on the kv table.
type KV struct {
	client *ent.Client
}

var _ progress.KV = (*KV)(nil)

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := k.client.KV.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, true, nil
}

// Set upserts key. created_at is immutable and survives overwrites.
func (k *KV) Set(ctx context.Context, key, value string) error {
	err := k.client.KV.Create().
		SetID(key).
		SetValue(value).
		OnConflictColumns(kv.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := k.client.KV.Delete().Where(kv.IDIn(keys...)).Exec(ctx); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
