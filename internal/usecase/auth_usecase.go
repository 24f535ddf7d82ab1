package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

const (
	bcryptCost       = 10
	tokenTTL         = 24 * time.Hour
	resetTokenTTL    = 15 * time.Minute
	resetTokenLength = 32
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type AdminClaims struct {
	ID    string
	Email string
}

type AuthUseCase struct {
	admins       repositories.AdminRepository
	users        repositories.UserRepository
	mailer       Mailer
	jwtSecret    []byte
	resetURLBase string
	logger       *logger.Logger
}

func NewAuthUseCase(
	admins repositories.AdminRepository,
	users repositories.UserRepository,
	mailer Mailer,
	jwtSecret string,
	resetURLBase string,
	logger *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		admins:       admins,
		users:        users,
		mailer:       mailer,
		jwtSecret:    []byte(jwtSecret),
		resetURLBase: resetURLBase,
		logger:       logger,
	}
}

func (uc *AuthUseCase) AdminSignup(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingCredentials
	}

	if _, err := uc.admins.GetByEmail(ctx, email); err == nil {
		return repositories.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrAdminNotFound) {
		return fmt.Errorf("failed to check admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entities.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uc.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) AdminSignin(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	admin, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return uc.signToken(admin.ID, admin.Email)
}

// ForgotPassword issues a time-limited reset token and mails the reset
// link. An unknown email returns success without sending anything, so the
// endpoint does not reveal which addresses exist.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingCredentials
	}

	admin, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			uc.logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to get admin: %w", err)
	}

	raw := make([]byte, resetTokenLength)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	admin.ResetTokenHash = hashResetToken(token)
	admin.ResetTokenExpiry = time.Now().Add(resetTokenTTL)

	if err := uc.admins.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := uc.resetURLBase + "/" + token
	body := fmt.Sprintf(
		`<p>You requested a password reset</p>
<p>Click here to reset your password:</p>
<a href=%q target="_blank">%s</a>`,
		resetURL, resetURL,
	)

	if err := uc.mailer.Send(ctx, admin.Email, "Password Reset Request", body); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return ErrInvalidResetToken
	}

	admin, err := uc.admins.GetByResetTokenHash(ctx, hashResetToken(token))
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if time.Now().After(admin.ResetTokenExpiry) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.PasswordHash = string(hash)
	admin.ResetTokenHash = ""
	admin.ResetTokenExpiry = time.Time{}

	if err := uc.admins.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) RegisterUser(ctx context.Context, name, email, phone, password string) (*entities.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		return nil, repositories.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (uc *AuthUseCase) LoginUser(ctx context.Context, email, password string) (string, *entities.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := uc.signToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken validates a signed session token and returns its claims.
func (uc *AuthUseCase) VerifyToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}

	return &AdminClaims{ID: id, Email: email}, nil
}

func (uc *AuthUseCase) signToken(id, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    id,
		"email": email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Reset tokens are stored hashed so a leaked database dump cannot be
// replayed against the reset endpoint.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

var (
	ErrMissingCredentials = errors.New("missing required credentials")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrInvalidToken       = errors.New("invalid token")
)
