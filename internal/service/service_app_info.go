package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// appVersion is the AppInfoService of the server: a fixed version string.
type appVersion string

// NewAppInfoService returns the service behind GET /api/version. A blank
// version is a configuration error.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service ready")
	return appVersion(version), nil
}

func (v appVersion) GetAppVersion(context.Context) string {
	return string(v)
}
