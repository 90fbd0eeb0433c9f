package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/bigfive/ent"
	"github.com/abhisek/bigfive/internal/endpoint"
)

// Results stores scored submissions in the results table.
type Results struct {
	client *ent.Client
}

// Save inserts a new result. Ids are never overwritten.
func (r *Results) Save(ctx context.Context, res endpoint.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	err = r.client.Result.Create().
		SetID(res.ID).
		SetTestID(res.TestID).
		SetLang(res.Lang).
		SetInvalid(res.Invalid).
		SetTimeElapsed(res.TimeElapsed).
		SetDateStamp(res.DateStamp.UTC()).
		SetData(data).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", res.ID, err)
	}
	return nil
}

// Get returns the result with the given id, or an error wrapping
// endpoint.ErrNotFound.
func (r *Results) Get(ctx context.Context, id string) (*endpoint.Result, error) {
	row, err := r.client.Result.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", endpoint.ErrNotFound, id)
		}
		return nil, fmt.Errorf("query result %s: %w", id, err)
	}

	var res endpoint.Result
	if err := json.Unmarshal(row.Data, &res); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", id, err)
	}
	return &res, nil
}
