package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// Open opens the Badger database at path with the options the blog
// service uses everywhere (quiet logger, async writes).
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	return badger.Open(opts)
}
