// Package store persists users and their sign-in tokens in bolt.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bios-Marcel/authbuttons/data"
	"github.com/boltdb/bolt"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	usersBucket  = []byte("Users")
	tokensBucket = []byte("Tokens")
)

var (
	ErrInvalidToken  = errors.New("invalid session")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrWrongPassword = errors.New("wrong password")
	ErrMissingInput  = errors.New("email and password are required")
)

type Store struct {
	db         *bolt.DB
	bcryptCost int
	now        func() time.Time
}

type Option func(*Store)

// WithBcryptCost lowers the hashing cost, mostly for tests.
func WithBcryptCost(cost int) Option {
	return func(s *Store) {
		s.bcryptCost = cost
	}
}

// Open opens the database at path, creating the file and buckets if they
// don't exist yet.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{usersBucket, tokensBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	s := &Store{
		db:         db,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) CreateUser(email, password, displayName string) (*data.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := data.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		users := tx.Bucket(usersBucket)
		if users.Get([]byte(email)) != nil {
			return ErrUserExists
		}

		id, err := users.NextSequence()
		if err != nil {
			return err
		}
		user.ID = int64(id)

		rawUser, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return users.Put([]byte(email), rawUser)
	}); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) User(email string) (*data.User, error) {
	var user *data.User
	if err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		user, err = getUser(tx, normalizeEmail(email))
		return err
	}); err != nil {
		return nil, err
	}
	return user, nil
}

func getUser(tx *bolt.Tx, email string) (*data.User, error) {
	rawUser := tx.Bucket(usersBucket).Get([]byte(email))
	if rawUser == nil {
		return nil, ErrUserNotFound
	}

	var user data.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, fmt.Errorf("cant parse user: %w", err)
	}
	return &user, nil
}

// Authenticate checks the password of the user with the given email.
func (s *Store) Authenticate(email, password string) (*data.User, error) {
	user, err := s.User(email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return user, nil
}

// CreateToken hands out a new sign-in token for the user.
func (s *Store) CreateToken(email string) (string, error) {
	tokenUUID, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := data.Token{
		Token:     tokenUUID.String(),
		Email:     normalizeEmail(email),
		CreatedAt: s.now(),
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		if _, err := getUser(tx, token.Email); err != nil {
			return err
		}

		rawToken, err := json.Marshal(token)
		if err != nil {
			return err
		}
		return tx.Bucket(tokensBucket).Put([]byte(token.Token), rawToken)
	}); err != nil {
		return "", err
	}

	return token.Token, nil
}

// UserForToken resolves the owner of a sign-in token.
func (s *Store) UserForToken(token string) (*data.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	var user *data.User
	if err := s.db.View(func(tx *bolt.Tx) error {
		rawToken := tx.Bucket(tokensBucket).Get([]byte(token))
		if rawToken == nil {
			return ErrInvalidToken
		}

		var storedToken data.Token
		if err := json.Unmarshal(rawToken, &storedToken); err != nil {
			return fmt.Errorf("cant parse session: %w", err)
		}

		var err error
		user, err = getUser(tx, storedToken.Email)
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidToken
		}
		return err
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Store) DeleteToken(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(tokensBucket).Delete([]byte(token))
	})
}
