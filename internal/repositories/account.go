package repositories

import (
	"database/sql"
	"fmt"

	"github.com/paulchambaz/illiad/internal/shared"
)

// AccountRepository persists registered users and resolves API keys.
//
// Passwords are stored as provided; credential hashing is out of scope for
// this server and keys are the only secret a client ever holds long-term.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new [AccountRepository] with the given database connection
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create registers a new account and returns its freshly generated API key.
//
// The key is generated once here and never changes. Registering a username
// that already exists fails on the accounts primary key.
func (r *AccountRepository) Create(user, password string) (string, error) {
	key := shared.GenerateKey()

	_, err := r.db.Exec(
		"INSERT INTO accounts (user, password, key) VALUES (?, ?, ?)",
		user, password, key,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert account: %w", err)
	}

	return key, nil
}

// Login returns the API key for the account matching the given credentials.
//
// Returns [shared.ErrUnauthorized] when no account matches.
func (r *AccountRepository) Login(user, password string) (string, error) {
	var key string
	err := r.db.QueryRow(
		"SELECT key FROM accounts WHERE user = ? AND password = ?",
		user, password,
	).Scan(&key)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("login for %s: %w", user, shared.ErrUnauthorized)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query account: %w", err)
	}

	return key, nil
}

// GetByKey resolves an API key to the username it was bound to at registration.
//
// Returns [shared.ErrUnauthorized] when the key is unknown.
func (r *AccountRepository) GetByKey(key string) (string, error) {
	var user string
	err := r.db.QueryRow("SELECT user FROM accounts WHERE key = ?", key).Scan(&user)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("unknown api key: %w", shared.ErrUnauthorized)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query account: %w", err)
	}

	return user, nil
}
