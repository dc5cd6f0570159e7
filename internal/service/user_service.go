package service

import (
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"career_compass_backend/pkg/logger"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo       *repository.UserRepository
	Storage        *StorageService
	MaxUploadBytes int64
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService, maxUploadBytes int64) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		Storage:        storage,
		MaxUploadBytes: maxUploadBytes,
	}
}

// Profile 返回给客户端的用户资料
type Profile struct {
	ID           uint    `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Birthday     string  `json:"birthday"`
	Standard     string  `json:"standard"`
	ProfilePhoto *string `json:"profile_photo"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.ErrNotFound, "User not found")
		}
		return nil, util.WrapError(util.ErrStore, "DB error", err)
	}
	return toProfile(user), nil
}

func toProfile(user *model.User) *Profile {
	p := &Profile{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Standard: user.Standard,
	}
	if !user.Birthday.IsZero() {
		p.Birthday = user.Birthday.Format(util.DateFormat)
	}
	if user.ProfilePhoto != "" {
		photo := user.ProfilePhoto
		p.ProfilePhoto = &photo
	}
	return p
}

// UploadPhoto 校验扩展名后以 "<uuid>_<原文件名>" 保存，并记录到用户资料
func (s *UserService) UploadPhoto(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", util.Validation("No file part")
	}
	if file.Filename == "" {
		return "", util.Validation("No selected file")
	}
	if !util.AllowedFile(file.Filename, util.AllowedPhotoExtensions) {
		return "", util.Validation("File type not allowed")
	}
	if s.MaxUploadBytes > 0 && file.Size > s.MaxUploadBytes {
		return "", util.Validation("File is too large")
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.NewError(util.ErrNotFound, "User not found")
		}
		return "", util.WrapError(util.ErrStore, "DB error", err)
	}

	ext := util.FileExtension(file.Filename)
	safeName := util.SecureFilename(file.Filename)
	if util.FileExtension(safeName) != ext {
		safeName = "photo." + ext
	}
	storedName := uuid.NewString() + "_" + safeName

	src, err := file.Open()
	if err != nil {
		return "", util.WrapError(util.ErrValidation, "Could not read uploaded file", err)
	}
	defer src.Close()

	if err := s.Storage.Upload(ctx, storedName, src, file.Size, mime.TypeByExtension("."+ext)); err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateProfilePhoto(ctx, userID, storedName); err != nil {
		_ = s.Storage.Delete(ctx, storedName)
		return "", util.WrapError(util.ErrStore, "DB error", err)
	}

	if previous := user.ProfilePhoto; previous != "" && previous != storedName {
		if err := s.Storage.Delete(ctx, previous); err != nil {
			logger.Log.Warn("failed to remove previous profile photo",
				zap.Uint("user_id", userID),
				zap.String("filename", previous),
				zap.Error(err),
			)
		}
	}

	return storedName, nil
}

// OpenPhoto 打开已上传的文件，返回内容和 Content-Type
func (s *UserService) OpenPhoto(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if !util.IsSafeStoredName(filename) {
		return nil, "", util.NewError(util.ErrNotFound, "File not found")
	}
	rc, err := s.Storage.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, "", util.NewError(util.ErrNotFound, "File not found")
		}
		return nil, "", err
	}

	contentType := mime.TypeByExtension("." + util.FileExtension(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return rc, contentType, nil
}
