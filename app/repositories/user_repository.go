package repositories

import (
	"fmt"
	"sort"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func userKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
}

func emailKey(email string) []byte {
	return []byte(EmailKeyPrefix + models.NormalizeEmail(email))
}

// Create stores a new user. The email index key enforces uniqueness;
// a taken address fails with ErrConflict.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(emailKey(user.Email)); err == nil {
			return ErrConflict
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(emailKey(user.Email), encodeID(user.ID))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email index
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id int
		if err := item.Value(func(val []byte) error {
			id = decodeID(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces an existing user record, moving the email index key
// when the address changed. A new address that is already taken fails
// with ErrConflict.
func (r *BadgerUserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(user.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.User
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		user.Email = models.NormalizeEmail(user.Email)
		if existing.Email != user.Email {
			if _, err := txn.Get(emailKey(user.Email)); err == nil {
				return ErrConflict
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(emailKey(existing.Email)); err != nil {
				return err
			}
			if err := txn.Set(emailKey(user.Email), encodeID(user.ID)); err != nil {
				return err
			}
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set(userKey(user.ID), data)
	})
}

// Delete removes a user and its email index key
func (r *BadgerUserRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var user models.User
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		}); err != nil {
			return err
		}

		if err := txn.Delete(emailKey(user.Email)); err != nil {
			return err
		}
		return txn.Delete(userKey(id))
	})
}

// List retrieves all users, newest first
func (r *BadgerUserRepository) List() ([]*models.User, error) {
	var users []*models.User

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user models.User
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// Count returns the number of stored users
func (r *BadgerUserRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
