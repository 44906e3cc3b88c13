// Package db stores user defined scales by name.
package db

import (
	"context"

	"github.com/jsphweid/tonality/scale"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("scale not found")

// ScaleStore is a named library of scales. Implementations are safe for
// concurrent use.
type ScaleStore interface {
	Put(ctx context.Context, name string, s scale.Scale) error
	// Get returns ErrNotFound for unknown names.
	Get(ctx context.Context, name string) (scale.Scale, error)
	// GetMany skips unknown names.
	GetMany(ctx context.Context, names []string) (map[string]scale.Scale, error)
	// List returns every stored name in ascending order.
	List(ctx context.Context) ([]string, error)
}

type Config struct {
	Endpoint string
	Region   string
	Table    string
}

// NewStore returns a DynamoDB backed store when an endpoint is configured
// and an in memory one otherwise.
func NewStore(cfg Config) (ScaleStore, error) {
	if cfg.Endpoint == "" {
		return NewMemoryStore(), nil
	}
	return NewDynamoStore(cfg)
}
