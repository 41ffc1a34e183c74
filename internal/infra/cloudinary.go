package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"voya/pkg/utils"
)

// CloudinaryUploader pushes images to Cloudinary's unsigned upload
// endpoint and returns the hosted URL. Credentials come from the
// environment at construction time.
type CloudinaryUploader struct {
	httpClient   *http.Client
	uploadURL    string
	uploadPreset string
}

func NewCloudinaryUploader() *CloudinaryUploader {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	return &CloudinaryUploader{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		uploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: status %d: %s", utils.ErrUploadFailed, resp.StatusCode, msg)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: response missing secure_url", utils.ErrUploadFailed)
	}
	return result.SecureURL, nil
}
