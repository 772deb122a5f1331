package service

import (
	"path/filepath"
	"strings"

	"github.com/callmedory/sport-project/pkg/blob"
	"github.com/google/uuid"
)

// ImageContainer is the blob container holding article images.
const ImageContainer = "images"

const maxImageBytes = 2 << 20

// ImageService validates and stores article images in blob storage.
type ImageService struct {
	blobs blob.Store
}

func NewImageService(blobs blob.Store) *ImageService {
	return &ImageService{blobs: blobs}
}

// Upload stores the image bytes under a generated key and returns the key.
// Only .jpeg/.jpg/.png up to 2 MB are accepted.
func (s *ImageService) Upload(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fail(MsgNoImage)
	}
	if len(data) > maxImageBytes {
		return "", fail(MsgImageTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpeg", ".jpg", ".png":
	default:
		return "", fail(MsgBadImageFormat)
	}

	key := uuid.NewString() + ext
	if err := s.blobs.Put(ImageContainer, key, data); err != nil {
		return "", wrap(err)
	}
	return key, nil
}

// Get fetches stored image bytes by key.
func (s *ImageService) Get(key string) ([]byte, error) {
	data, err := s.blobs.Get(ImageContainer, key)
	if err != nil {
		return nil, wrap(err)
	}
	return data, nil
}
