package repository

import (
	"context"
	"errors"
	"time"

	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func CreateNewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) GetAdminByEmail(ctx context.Context, email string) (data domain.Admin, err error) {
	err = r.db.WithContext(ctx).Where("email = ?", email).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, nil
		}
		log.Error().Err(err).Str("component", "GetAdminByEmail").Msg("")
		return domain.Admin{}, errs.ErrInternalServer
	}

	return data, nil
}

func (r *AdminRepositoryImpl) GetAdminByID(ctx context.Context, id int64) (data domain.Admin, err error) {
	err = r.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, nil
		}
		log.Error().Err(err).Str("component", "GetAdminByID").Msg("")
		return domain.Admin{}, errs.ErrInternalServer
	}

	return data, nil
}

func (r *AdminRepositoryImpl) AddAdmin(ctx context.Context, data domain.Admin) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	err = r.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		log.Error().Err(err).Str("component", "AddAdmin").Msg("")
		return 0, errs.ErrInternalServer
	}

	return data.ID, nil
}
