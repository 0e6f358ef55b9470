package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"
	"github.com/Crafty4/web1/repository"
	"github.com/Crafty4/web1/utils"

	"gorm.io/gorm"
)

type GalleryService struct {
	Repo      *repository.GalleryRepository
	UploadDir string
}

func NewGalleryService(repo *repository.GalleryRepository, uploadDir string) *GalleryService {
	return &GalleryService{Repo: repo, UploadDir: uploadDir}
}

type UploadImageReq struct {
	Title       string `json:"title"`
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

func (s *GalleryService) Upload(req *UploadImageReq) (*entity.GalleryImage, error) {
	if strings.TrimSpace(req.ImageBase64) == "" {
		return nil, fmt.Errorf("%w: image payload is required", apperr.ErrValidation)
	}
	path, err := utils.SaveBase64Image(req.ImageBase64, s.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("%w: bad image payload", apperr.ErrValidation)
	}
	img := &entity.GalleryImage{Title: req.Title, Path: path}
	if err := s.Repo.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *GalleryService) List() ([]entity.GalleryImage, error) {
	return s.Repo.List()
}

func (s *GalleryService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: image %d", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repo.Delete(id)
}
