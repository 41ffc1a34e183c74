package file_fx

import (
	"go.uber.org/fx"
	"voya/internal/infra"
	"voya/internal/services"
)

var Module = fx.Provide(
	provideFileService, provideUploader)

func provideUploader() services.Uploader {
	return infra.NewCloudinaryUploader()
}

func provideFileService(uploader services.Uploader) services.FileServiceInterface {
	return services.NewFileService(uploader)
}
