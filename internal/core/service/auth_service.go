package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

var errInvalidToken = &domain.Error{Kind: domain.KindAuth, Message: "invalid or expired token"}

// AuthService implements registration, login and token verification.
type AuthService struct {
	users     ports.AuthRepository
	directory ports.DirectoryRepository
	tx        ports.TxManager
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.AuthRepository,
	directory ports.DirectoryRepository,
	tx ports.TxManager,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		directory: directory,
		tx:        tx,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// RegisterClient creates a CLIENT account together with its profile.
func (s *AuthService) RegisterClient(ctx context.Context, in ports.RegisterClientInput) (*ports.AuthResult, error) {
	fullName := normalize(in.FullName)
	if fullName == "" {
		return nil, domain.InvalidInput("full name is required")
	}

	user, err := s.register(ctx, in.Email, in.Password, domain.RoleClient, func(ctx context.Context, user *domain.User) error {
		return s.directory.SaveClient(ctx, &domain.Client{
			OwnerUserID:     user.ID,
			FullName:        fullName,
			Company:         in.Company,
			ProfilePhotoURL: in.ProfilePhotoURL,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// RegisterFreelancer creates a FREELANCER account together with its profile.
// Category names are created on first use.
func (s *AuthService) RegisterFreelancer(ctx context.Context, in ports.RegisterFreelancerInput) (*ports.AuthResult, error) {
	fullName := normalize(in.FullName)
	if fullName == "" {
		return nil, domain.InvalidInput("full name is required")
	}

	user, err := s.register(ctx, in.Email, in.Password, domain.RoleFreelancer, func(ctx context.Context, user *domain.User) error {
		ids, err := resolveCategories(ctx, s.directory, in.CategoryNames)
		if err != nil {
			return err
		}
		return s.directory.SaveFreelancer(ctx, &domain.Freelancer{
			OwnerUserID:     user.ID,
			FullName:        fullName,
			Bio:             in.Bio,
			Skills:          in.Skills,
			CategoryIDs:     ids,
			Whatsapp:        in.Whatsapp,
			ContactEmail:    in.ContactEmail,
			ProfilePhotoURL: in.ProfilePhotoURL,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// register writes the account and, through createProfile, its profile in a
// single transaction.
func (s *AuthService) register(
	ctx context.Context,
	email, password string,
	role domain.Role,
	createProfile func(ctx context.Context, user *domain.User) error,
) (*domain.User, error) {
	email = strings.ToLower(normalize(email))
	if email == "" || password == "" {
		return nil, domain.InvalidInput("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		u, err := s.users.Create(ctx, &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		created = u
		return createProfile(ctx, u)
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", strings.ToLower(string(role)), err)
	}

	s.logger.Info().
		Int64("user_id", created.ID).
		Str("role", string(role)).
		Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(normalize(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(user)
}

// Authenticate verifies an HS256 token and returns the identity it carries.
func (s *AuthService) Authenticate(_ context.Context, token string) (domain.Actor, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.Actor{}, errInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return domain.Actor{}, errInvalidToken
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Actor{}, errInvalidToken
	}
	roleClaim, _ := claims["role"].(string)
	role := domain.Role(roleClaim)
	if !role.Valid() {
		return domain.Actor{}, errInvalidToken
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &ports.AuthResult{Token: signed, Role: user.Role, UserID: user.ID}, nil
}
