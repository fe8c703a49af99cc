package postgres

import (
	"database/sql"

	"github.com/samafzali11/bale-aibot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get returns the stored profile, or nil when the user is unknown
func (r *UserRepo) Get(userID int64) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var username, firstName, lastName sql.NullString
	var language string

	query := `
		SELECT user_id, username, first_name, last_name, language, created_at
		FROM users
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&p.UserID, &username, &firstName, &lastName, &language, &p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Username = username.String
	p.FirstName = firstName.String
	p.LastName = lastName.String
	p.Language = domain.Language(language)

	return &p, nil
}

// Upsert creates the user or refreshes profile fields.
// The stored language is never touched here; it only changes through SetLanguage.
func (r *UserRepo) Upsert(profile domain.UserProfile) error {
	query := `
		INSERT INTO users (user_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name
	`
	_, err := r.db.Exec(query, profile.UserID, profile.Username, profile.FirstName, profile.LastName)
	return err
}

// SetLanguage stores the user's language preference
func (r *UserRepo) SetLanguage(userID int64, lang domain.Language) error {
	query := `
		INSERT INTO users (user_id, language)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET language = EXCLUDED.language
	`
	_, err := r.db.Exec(query, userID, string(lang))
	return err
}
