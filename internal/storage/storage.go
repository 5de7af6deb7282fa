package storage

import (
	"context"
	"errors"

	"defiskills/internal/model"
)

// Storage defines a sink for liquidity snapshots.
type Storage interface {
	PutSnapshots(ctx context.Context, snapshots []model.LiquiditySnapshot) error
}

// Multi fans a batch out to every sink and joins their errors.
type Multi []Storage

func (m Multi) PutSnapshots(ctx context.Context, snapshots []model.LiquiditySnapshot) error {
	var errs []error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.PutSnapshots(ctx, snapshots); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
