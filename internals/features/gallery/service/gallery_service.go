// file: internals/features/gallery/service/gallery_service.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"blackbear_backend/internals/datastore"
	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/gallery/model"
	helper "blackbear_backend/internals/helpers"
)

type GalleryService struct {
	store      *datastore.Store[model.GalleryItemModel]
	uploadsDir string
}

func NewGalleryService(store *datastore.Store[model.GalleryItemModel], uploadsDir string) *GalleryService {
	return &GalleryService{store: store, uploadsDir: uploadsDir}
}

// List returns the gallery in insertion order.
func (s *GalleryService) List() ([]model.GalleryItemModel, error) {
	return s.store.Read()
}

func (s *GalleryService) Create(imageURL, title string) (model.GalleryItemModel, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return model.GalleryItemModel{}, errs.NewValidation("Provide an image upload or a hosted image URL.")
	}

	item := model.GalleryItemModel{
		ID:        uuid.NewString(),
		ImageURL:  imageURL,
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := s.store.Update(func(items []model.GalleryItemModel) ([]model.GalleryItemModel, error) {
		return append(items, item), nil
	})
	if err != nil {
		return model.GalleryItemModel{}, err
	}
	return item, nil
}

// Delete removes the record and, when its image lives under the uploads
// area, best-effort removes the file too. A failed file removal never fails
// the delete.
func (s *GalleryService) Delete(id string) (model.GalleryItemModel, error) {
	var removed model.GalleryItemModel

	err := s.store.Update(func(items []model.GalleryItemModel) ([]model.GalleryItemModel, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			removed = items[i]
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, errs.NotFound("Image")
	})
	if err != nil {
		return model.GalleryItemModel{}, err
	}

	helper.RemoveUpload(removed.ImageURL, s.uploadsDir)
	return removed, nil
}
