package repositories

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	stdErrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	userPrefix      = "user:"
	userEmailPrefix = "user-email:"
	userNamePrefix  = "user-name:"
)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// userRecord is the on-disk representation of a user.
type userRecord struct {
	ID           string `cbor:"id"`
	Name         string `cbor:"name"`
	Email        string `cbor:"email"`
	PasswordHash string `cbor:"password_hash"`
	CreatedAt    int64  `cbor:"created_at"`
}

// userNameKey indexes users by display name. The NUL separator keeps a name
// from matching the prefix of a longer one.
// Format: "user-name:{name}\x00{created_at_padded}:{id}"
func userNameKey(name string, createdAt time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%s\x00%019d:%s", userNamePrefix, name, createdAt.UnixNano(), id))
}

// CreateUser persists a new user. Emails are unique, names are not.
func (u UserRepository) CreateUser(_ context.Context, name, email, hashedPassword string) (domain.User, error) {
	email = normalizeEmail(email)
	user := domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := marshal(fromUser(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(userEmailPrefix + email)
		if _, err := txn.Get(emailKey); err == nil {
			return errors.ErrUserAlreadyExists
		} else if !stdErrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set([]byte(userPrefix+string(user.ID)), data); err != nil {
			return err
		}
		if err := txn.Set(emailKey, []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(userNameKey(name, user.CreatedAt, string(user.ID)), []byte(user.ID))
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, string(id))
		return err
	})
	return user, err
}

// GetUserByEmail follows the email index to the user record.
func (u UserRepository) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		id, err := getIndex(txn, []byte(userEmailPrefix+normalizeEmail(email)), errors.ErrUserNotFound)
		if err != nil {
			return err
		}
		user, err = getUser(txn, id)
		return err
	})
	return user, err
}

// FindUserByName returns the oldest user carrying exactly this name.
func (u UserRepository) FindUserByName(_ context.Context, name string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userNamePrefix + name + "\x00")
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()

		it.Rewind()
		if !it.ValidForPrefix(prefix) {
			return errors.ErrUserNotFound
		}
		id, err := it.Item().ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = getUser(txn, string(id))
		return err
	})
	return user, err
}

// ListUsers returns every user sorted by name.
func (u UserRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			var record userRecord
			if err := it.Item().Value(func(val []byte) error {
				return unmarshal(val, &record)
			}); err != nil {
				return err
			}
			users = append(users, toUser(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})
	return users, nil
}

func getUser(txn *badger.Txn, id string) (domain.User, error) {
	var record userRecord
	if err := getRecord(txn, []byte(userPrefix+id), &record, errors.ErrUserNotFound); err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}

// getRecord decodes the value stored at key, translating a missing key into notFound.
func getRecord(txn *badger.Txn, key []byte, v any, notFound error) error {
	item, err := txn.Get(key)
	if stdErrors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshal(val, v)
	})
}

// getIndex reads an index entry whose value is the id of the indexed record.
func getIndex(txn *badger.Txn, key []byte, notFound error) (string, error) {
	item, err := txn.Get(key)
	if stdErrors.Is(err, badger.ErrKeyNotFound) {
		return "", notFound
	}
	if err != nil {
		return "", err
	}
	id, err := item.ValueCopy(nil)
	return string(id), err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func fromUser(user domain.User) userRecord {
	return userRecord{
		ID:           string(user.ID),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UnixNano(),
	}
}

func toUser(record userRecord) domain.User {
	return domain.User{
		ID:           domain.UserID(record.ID),
		Name:         record.Name,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		CreatedAt:    time.Unix(0, record.CreatedAt).UTC(),
	}
}
