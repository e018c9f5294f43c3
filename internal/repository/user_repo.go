package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vivekd2000/Be-fit/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, email, otp_hash, password_hash,
	health_metrics, fitness_profile, dietary_preferences,
	supplement_preferences, other_preferences, consent, history,
	created_at, updated_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.OTPHash,
		&user.PasswordHash,
		&user.HealthMetrics,
		&user.FitnessProfile,
		&user.DietaryPreferences,
		&user.SupplementPreferences,
		&user.OtherPreferences,
		&user.Consent,
		&user.History,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Email).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// SetOTPHash overwrites any previously issued code; the old code stops
// validating as soon as the new hash is stored.
func (r *UserRepository) SetOTPHash(ctx context.Context, userID int64, hash string) error {
	query := `UPDATE users SET otp_hash = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, hash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) ClearOTPHash(ctx context.Context, userID int64) error {
	query := `UPDATE users SET otp_hash = NULL, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateProfileInput carries every profile section. Updates are full-replace:
// the submitted document overwrites all sections, no per-field merge.
type UpdateProfileInput struct {
	HealthMetrics         models.HealthMetrics
	FitnessProfile        models.FitnessProfile
	DietaryPreferences    models.DietaryPreferences
	SupplementPreferences models.SupplementPreferences
	OtherPreferences      models.OtherPreferences
	Consent               bool
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*models.User, error) {
	query := `
		UPDATE users
		SET health_metrics = $1,
			fitness_profile = $2,
			dietary_preferences = $3,
			supplement_preferences = $4,
			other_preferences = $5,
			consent = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query,
		input.HealthMetrics,
		input.FitnessProfile,
		input.DietaryPreferences,
		input.SupplementPreferences,
		input.OtherPreferences,
		input.Consent,
		userID,
	))
}

// AppendSuggestionHistory pushes one entry onto the append-only suggestion log.
func (r *UserRepository) AppendSuggestionHistory(ctx context.Context, userID int64, entry models.SuggestionEntry) error {
	query := `
		UPDATE users
		SET history = jsonb_set(
				COALESCE(history, '{}'::jsonb),
				'{supplementSuggestions}',
				COALESCE(history->'supplementSuggestions', '[]'::jsonb) || $1::jsonb),
			updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, entry, userID)
	return err
}
