package service

import (
	"context"

	"kioskopos/internal/dto"
	"kioskopos/internal/repository"
)

type ConfigService interface {
	Get(ctx context.Context) (*dto.ConfigurationResponse, error)
	Update(ctx context.Context, req dto.ConfigurationUpdate) (*dto.ConfigurationResponse, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) Get(ctx context.Context) (*dto.ConfigurationResponse, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ConfigurationResponse{BusinessName: c.BusinessName}, nil
}

func (s *configService) Update(ctx context.Context, req dto.ConfigurationUpdate) (*dto.ConfigurationResponse, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	c.BusinessName = req.BusinessName
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return &dto.ConfigurationResponse{BusinessName: c.BusinessName}, nil
}
