package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mkuznecov/shopify_ecom/internal/hash"
	"github.com/mkuznecov/shopify_ecom/internal/logging"
	"github.com/mkuznecov/shopify_ecom/internal/models"
	"github.com/mkuznecov/shopify_ecom/internal/mykafka"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/tokens"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Tokens   *tokens.Service
	Producer *mykafka.Producer
}

// Register hashes the password, issues the identity token bound to the email
// and persists the user in one write. The token is stored on the user and
// reused for every later login; it is not returned to the caller here.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	token, err := s.Tokens.Issue(email)
	if err != nil {
		l.Error("register_error", "reason", "cannot issue token", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Token:        token,
		Role:         "user",
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			l.Warn("register_error", "status", 400, "reason", "user already exists")
			return nil, ErrUserExists
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	s.publish(ctx, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return &user, nil
}

// Login verifies the credentials and returns the user together with the
// token minted at registration. No new token is issued here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 400, "reason", "user not registered")
			return nil, ErrUserNotRegistered
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	s.publish(ctx, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	return user, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
