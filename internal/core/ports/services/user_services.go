package services

import (
	"context"
	"time"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// FindOrCreateGoogleUser resolves the user for a verified Google account,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user,
	// returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleAuthSvcFacade verifies Google sign-in credentials.
type GoogleAuthSvcFacade interface {
	// VerifyIDToken validates a Google ID token and returns the account's
	// email and display name.
	VerifyIDToken(ctx context.Context, idToken string) (email string, name string, err error)

	// AuthCodeURL builds the Google consent URL for the redirect flow.
	AuthCodeURL(state string) string

	// ExchangeCode trades an authorization code for Google tokens and
	// returns the verified account's email and display name.
	ExchangeCode(ctx context.Context, code string) (email string, name string, err error)
}
