package user

import (
	"context"
	"fmt"
	"strings"

	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	Current(ctx context.Context, userID int) (*Profile, error)
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, params UpdateUserParams) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password string) (User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, email, hashed, string(RoleUser))
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	return token, u, err
}

// Current returns the authenticated user's profile with their five
// most recent orders.
func (s *service) Current(ctx context.Context, userID int) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID, 5)
}

func (s *service) GetProfile(ctx context.Context, userID int) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID, 0)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateUserParams) (User, error) {
	if params.Password != nil {
		hashed, err := HashPassword(*params.Password)
		if err != nil {
			return User{}, err
		}
		params.Password = utils.StrPtr(hashed)
	}

	return s.repo.Update(ctx, params)
}
