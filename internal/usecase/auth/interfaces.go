package auth

import (
	"context"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/internal/entity/dto/v1"
)

type (
	Repository interface {
		GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	}

	Feature interface {
		Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
		Verify(token string) (*Claims, error)
	}
)
