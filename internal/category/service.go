package category

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingName   = errors.New("category name is required")
	ErrCategoryTaken = errors.New("category already exists")
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name string) (*Category, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	c, err := s.repo.Create(ctx, name)
	if err != nil {
		if strings.Contains(err.Error(), "categories_name_key") {
			return nil, ErrCategoryTaken
		}
		return nil, err
	}

	return c, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
