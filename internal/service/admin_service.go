package service

import (
	"context"

	"github.com/abdulbasset-benz/misskitty-api/config"
	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/internal/repository"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/abdulbasset-benz/misskitty-api/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AdminServiceImpl struct {
	repo   repository.AdminRepository
	config config.Config
}

func CreateNewAdminService(repo repository.AdminRepository, config config.Config) AdminService {
	return &AdminServiceImpl{repo: repo, config: config}
}

// SeedAdmin creates the admin account from the environment-provided
// credentials if it does not exist yet. Runs once at startup.
func (s *AdminServiceImpl) SeedAdmin(ctx context.Context) (err error) {
	email := s.config.AdminConfig.Email
	password := s.config.AdminConfig.Password
	if email == "" || password == "" {
		log.Warn().Str("component", "SeedAdmin").Msg("admin credentials not configured, skipping seed")
		return nil
	}

	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return err
	}
	if admin.ID != 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.AddAdmin(ctx, domain.Admin{
		Email:          email,
		HashedPassword: string(hash),
	})

	return err
}

func (s *AdminServiceImpl) Login(ctx context.Context, payload dto.AdminRequest) (resp dto.LoginResponse, err error) {
	admin, err := s.repo.GetAdminByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if admin.ID == 0 {
		return resp, errs.ErrInvalidCredentialsEmail
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(admin.ID, admin.Email, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Token = token
	resp.AdminID = admin.ID

	return
}
