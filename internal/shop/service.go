package shop

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingName = errors.New("shop name is required")
	ErrShopTaken   = errors.New("shop already exists")
)

type Service interface {
	List(ctx context.Context) ([]Shop, error)
	Create(ctx context.Context, name string, address *string) (*Shop, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Shop, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, name string, address *string) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	sh, err := s.repo.Create(ctx, name, address)
	if err != nil {
		if strings.Contains(err.Error(), "shops_name_key") {
			return nil, ErrShopTaken
		}
		return nil, err
	}

	return sh, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
