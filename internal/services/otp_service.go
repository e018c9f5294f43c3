package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/vivekd2000/Be-fit/internal/models"
	"github.com/vivekd2000/Be-fit/pkg/utils"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoPendingOTP = errors.New("no pending otp")
	ErrOTPMismatch  = errors.New("otp mismatch")
)

type OTPUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SetOTPHash(ctx context.Context, userID int64, hash string) error
	ClearOTPHash(ctx context.Context, userID int64) error
}

type OTPSender interface {
	SendOTP(ctx context.Context, to, code string) error
}

// OTPService drives the passwordless login state machine. Each issuance
// overwrites the stored hash, so only the most recently issued code validates;
// a successful verification clears the hash, making every code single-use.
type OTPService struct {
	users  OTPUserStore
	sender OTPSender
}

func NewOTPService(users OTPUserStore, sender OTPSender) *OTPService {
	return &OTPService{users: users, sender: sender}
}

// IssueForRegistration creates the account on first contact, then issues a code.
func (s *OTPService) IssueForRegistration(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		user = &models.User{Email: email}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return err
		}
	}
	return s.issue(ctx, user)
}

// IssueForLogin requires a pre-existing account.
func (s *OTPService) IssueForLogin(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return s.issue(ctx, user)
}

func (s *OTPService) issue(ctx context.Context, user *models.User) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(code)
	if err != nil {
		return err
	}
	if err := s.users.SetOTPHash(ctx, user.ID, hash); err != nil {
		return err
	}
	// The hash is already persisted at this point; a dispatch failure leaves
	// a valid but undelivered code behind, which the next issuance overwrites.
	return s.sender.SendOTP(ctx, user.Email, code)
}

// Verify checks the submitted code against the stored hash and clears the
// hash on success, so replaying the same code fails.
func (s *OTPService) Verify(ctx context.Context, email, code string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoPendingOTP
		}
		return nil, err
	}
	if user.OTPHash == nil {
		return nil, ErrNoPendingOTP
	}
	if !utils.CheckPassword(code, *user.OTPHash) {
		return nil, ErrOTPMismatch
	}
	if err := s.users.ClearOTPHash(ctx, user.ID); err != nil {
		return nil, err
	}
	user.OTPHash = nil
	return user, nil
}

// generateOTP returns a random 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
