package professionals

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
)

type professionalUsecase struct {
	ProfessionalRepository contracts.ProfessionalRepository
	MinioStorage           contracts.Storage
	InternalConfig         *config.InternalConfig
}

func NewProfessionalUsecase(
	professionalRepository contracts.ProfessionalRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
) contracts.ProfessionalUsecase {
	return &professionalUsecase{
		ProfessionalRepository: professionalRepository,
		MinioStorage:           minioStorage,
		InternalConfig:         internalConfig,
	}
}

func (uc *professionalUsecase) OnboardProfessional(ctx context.Context, request *requests.OnboardProfessionalRequest) (*models.Professional, error) {
	professional := &models.Professional{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		Phone:           request.Phone,
		Speciality:      request.Speciality,
		ExperienceYears: request.ExperienceYears,
		ConsultingFee:   request.ConsultingFee,
		ThemeColor:      request.ThemeColor,
		Status:          constvars.ProfessionalStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	base := utils.BuildSubdomain(request.FirstName, request.LastName)
	return uc.ProfessionalRepository.CreateWithUniqueSubdomain(ctx, professional, base)
}

func (uc *professionalUsecase) CreateProfessional(ctx context.Context, request *requests.CreateProfessionalRequest) (*models.Professional, error) {
	// Operator-created professionals skip the vetting queue by default.
	status := request.Status
	if status == "" {
		status = constvars.ProfessionalStatusApproved
	}

	professional := &models.Professional{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		Phone:           request.Phone,
		Speciality:      request.Speciality,
		ExperienceYears: request.ExperienceYears,
		ConsultingFee:   request.ConsultingFee,
		ThemeColor:      request.ThemeColor,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}

	base := utils.BuildSubdomain(request.FirstName, request.LastName)
	return uc.ProfessionalRepository.CreateWithUniqueSubdomain(ctx, professional, base)
}

func (uc *professionalUsecase) FindAllProfessionals(ctx context.Context, statusFilter string) ([]models.Professional, error) {
	if statusFilter != "" {
		return uc.ProfessionalRepository.FindByStatus(ctx, statusFilter)
	}
	return uc.ProfessionalRepository.FindAll(ctx)
}

func (uc *professionalUsecase) FindProfessionalByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}
	return professional, nil
}

func (uc *professionalUsecase) FindApprovedProfessionals(ctx context.Context) ([]responses.ProfessionalProfile, error) {
	professionals, err := uc.ProfessionalRepository.FindByStatus(ctx, constvars.ProfessionalStatusApproved)
	if err != nil {
		return nil, err
	}

	profiles := make([]responses.ProfessionalProfile, 0, len(professionals))
	for i := range professionals {
		profiles = append(profiles, uc.buildProfile(ctx, &professionals[i]))
	}
	return profiles, nil
}

func (uc *professionalUsecase) FindProfessionalBySubdomain(ctx context.Context, subdomain string) (*responses.ProfessionalProfile, error) {
	professional, err := uc.ProfessionalRepository.FindBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}
	if professional.Status != constvars.ProfessionalStatusApproved {
		return nil, exceptions.ErrProfessionalNotApproved(nil)
	}

	profile := uc.buildProfile(ctx, professional)
	return &profile, nil
}

func (uc *professionalUsecase) UpdateProfessional(ctx context.Context, professionalID string, request *requests.UpdateProfessionalRequest) (*models.Professional, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	if request.FirstName != nil {
		professional.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		professional.LastName = *request.LastName
	}
	if request.Email != nil {
		professional.Email = *request.Email
	}
	if request.Phone != nil {
		professional.Phone = *request.Phone
	}
	if request.Speciality != nil {
		professional.Speciality = *request.Speciality
	}
	if request.ExperienceYears != nil {
		professional.ExperienceYears = *request.ExperienceYears
	}
	if request.ConsultingFee != nil {
		professional.ConsultingFee = *request.ConsultingFee
	}
	if request.ThemeColor != nil {
		professional.ThemeColor = *request.ThemeColor
	}
	if request.Status != nil {
		professional.Status = *request.Status
	}

	return uc.ProfessionalRepository.Update(ctx, professional)
}

func (uc *professionalUsecase) ApproveProfessional(ctx context.Context, professionalID string) (*models.Professional, error) {
	return uc.setStatus(ctx, professionalID, constvars.ProfessionalStatusApproved)
}

func (uc *professionalUsecase) RejectProfessional(ctx context.Context, professionalID string) (*models.Professional, error) {
	return uc.setStatus(ctx, professionalID, constvars.ProfessionalStatusRejected)
}

func (uc *professionalUsecase) UploadProfilePicture(ctx context.Context, professionalID string, request *requests.UploadProfilePictureRequest) (*responses.ProfilePicture, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	data, ext, err := utils.DecodeBase64Image(request.ProfilePicture)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(ext, utils.ImageAllowedProfilePictureFormats); err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, uc.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB); err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName("profile_picture", professional.Subdomain, ext)
	objectName, err := uc.MinioStorage.UploadBase64Image(ctx, data, uc.InternalConfig.Minio.BucketName, fileName, ext)
	if err != nil {
		return nil, err
	}

	professional.ProfilePicture = objectName
	if _, err := uc.ProfessionalRepository.Update(ctx, professional); err != nil {
		return nil, err
	}

	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(
		ctx,
		uc.InternalConfig.Minio.BucketName,
		objectName,
		time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryInHours)*time.Hour,
	)
	if err != nil {
		return nil, err
	}
	return &responses.ProfilePicture{ProfilePictureURL: url}, nil
}

func (uc *professionalUsecase) setStatus(ctx context.Context, professionalID, status string) (*models.Professional, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	professional.Status = status
	return uc.ProfessionalRepository.Update(ctx, professional)
}

func (uc *professionalUsecase) buildProfile(ctx context.Context, professional *models.Professional) responses.ProfessionalProfile {
	profile := responses.ProfessionalProfile{
		ID:              professional.ID.Hex(),
		FirstName:       professional.FirstName,
		LastName:        professional.LastName,
		Speciality:      professional.Speciality,
		ExperienceYears: professional.ExperienceYears,
		ConsultingFee:   professional.ConsultingFee,
		ThemeColor:      professional.ThemeColor,
		Subdomain:       professional.Subdomain,
		CreatedAt:       professional.CreatedAt,
	}

	if professional.ProfilePicture != "" && uc.MinioStorage != nil {
		url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(
			ctx,
			uc.InternalConfig.Minio.BucketName,
			professional.ProfilePicture,
			time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryInHours)*time.Hour,
		)
		if err == nil {
			profile.ProfilePictureURL = url
		}
	}
	return profile
}
