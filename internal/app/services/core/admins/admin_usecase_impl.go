package admins

import (
	"context"
	"time"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type adminUsecase struct {
	AdminRepository contracts.AdminRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewAdminUsecase(
	adminRepository contracts.AdminRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AdminUsecase {
	return &adminUsecase{
		AdminRepository: adminRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

type sessionData struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

func (uc *adminUsecase) Login(ctx context.Context, request *requests.AdminLoginRequest) (*responses.AdminLogin, error) {
	admin, err := uc.AdminRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, admin.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionID := uuid.New().String()
	session := sessionData{
		AdminID:  admin.ID.Hex(),
		Username: admin.Username,
	}
	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, sessionID, session, expiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.AdminLogin{
		AccessToken: token,
		TokenType:   constvars.TokenTypeBearer,
	}, nil
}

func (uc *adminUsecase) EnsureDefaultAdmin(ctx context.Context) error {
	existing, err := uc.AdminRepository.FindByUsername(ctx, uc.InternalConfig.Admin.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(uc.InternalConfig.Admin.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	admin := &models.AdminUser{
		Username:  uc.InternalConfig.Admin.Username,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
	_, err = uc.AdminRepository.Create(ctx, admin)
	return err
}
