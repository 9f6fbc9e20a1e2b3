// Package kv holds the string key/value backends the notes storage sits on.
package kv

import "context"

// Store is a flat string key/value store. A missing key is reported with
// found == false and no error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
