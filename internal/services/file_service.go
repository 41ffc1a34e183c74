package services

import (
	"context"

	"voya/pkg/utils"
)

// Uploader sends an image to the external object store and returns its
// public URL.
type Uploader interface {
	UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error)
}

type FileServiceInterface interface {
	UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error)
}

const maxUploadBytes = 10 << 20

type FileService struct {
	uploader Uploader
}

func NewFileService(uploader Uploader) FileServiceInterface {
	return &FileService{uploader: uploader}
}

func (f *FileService) UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if len(data) == 0 || len(data) > maxUploadBytes {
		return "", utils.ErrInvalidInput
	}
	url, err := f.uploader.UploadImage(ctx, data, filename, folder)
	if err != nil {
		return "", err
	}
	return url, nil
}
