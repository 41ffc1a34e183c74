package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voya/pkg/utils"
)

type stubUploader struct {
	url      string
	err      error
	filename string
	folder   string
}

func (s *stubUploader) UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error) {
	s.filename = filename
	s.folder = folder
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func TestUploadImage(t *testing.T) {
	uploader := &stubUploader{url: "https://cdn.example.com/boards/photo.jpg"}
	service := NewFileService(uploader)

	url, err := service.UploadImage(context.Background(), []byte("image-bytes"), "photo.jpg", "boards")
	require.NoError(t, err)
	assert.Equal(t, uploader.url, url)
	assert.Equal(t, "photo.jpg", uploader.filename)
	assert.Equal(t, "boards", uploader.folder)
}

func TestUploadImageSizeLimits(t *testing.T) {
	service := NewFileService(&stubUploader{url: "https://cdn.example.com/x"})

	_, err := service.UploadImage(context.Background(), nil, "photo.jpg", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	huge := bytes.Repeat([]byte("a"), maxUploadBytes+1)
	_, err = service.UploadImage(context.Background(), huge, "photo.jpg", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUploadImagePropagatesUploaderError(t *testing.T) {
	wantErr := errors.New("cloudinary upload: status 500")
	service := NewFileService(&stubUploader{err: wantErr})

	_, err := service.UploadImage(context.Background(), []byte("image-bytes"), "photo.jpg", "")
	assert.ErrorIs(t, err, wantErr)
}
