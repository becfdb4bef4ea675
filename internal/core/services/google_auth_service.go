package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/platform/config"
)

// googleAuthService verifies Google sign-in credentials. The SPA normally
// posts a ready-made ID token (One Tap flow); the authorization-code pair of
// methods backs the redirect flow for browsers that block third-party popups.
type googleAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleAuthService creates a new Google auth service.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

func (s *googleAuthService) VerifyIDToken(ctx context.Context, idToken string) (string, string, error) {
	payload, err := idtoken.Validate(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		return "", "", fmt.Errorf("%w: google id token validation failed: %v", apperrors.ErrUnauthorized, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", "", fmt.Errorf("%w: google id token has no email claim", apperrors.ErrUnauthorized)
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}
	return email, name, nil
}

func (s *googleAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", "", fmt.Errorf("%w: google code exchange failed: %v", apperrors.ErrUnauthorized, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", "", fmt.Errorf("%w: google token response carried no id token", apperrors.ErrUnauthorized)
	}
	return s.VerifyIDToken(ctx, rawIDToken)
}
