package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// Store is the key/value contract the engine runs on. Values are JSON
// documents. Key families in use:
//
//	user:<id>                        profile
//	user_nickname:<nickname>         nickname -> user id mapping
//	activity:<userId>:<unixMilli>    append-only submission records
//	device:<userId>                  FCM device token
//
// GetByPrefix returns values in insertion order; the ranking tie-break
// depends on that.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
