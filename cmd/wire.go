package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/hirelens/interview-cli/internal/adapters/backendapi"
	"github.com/hirelens/interview-cli/internal/adapters/detector"
	"github.com/hirelens/interview-cli/internal/adapters/media/mjpeg"
	"github.com/hirelens/interview-cli/internal/adapters/sessioncache"
	"github.com/hirelens/interview-cli/internal/log"
	"github.com/hirelens/interview-cli/internal/ports"
)

type app struct {
	creds   ports.CredentialStore
	devices ports.MediaDevices
	backend ports.Backend
	logger  zerolog.Logger

	detectorURL string
}

func wireApp() (*app, error) {
	log.Configure(log.Config{})
	logger := log.Base()

	creds, err := sessioncache.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session cache: %w", err)
	}

	devices := &mjpeg.Devices{
		CameraURL: envOrDefault("IVC_CAMERA_URL", "http://127.0.0.1:8940/camera"),
		ScreenURL: envOrDefault("IVC_SCREEN_URL", "http://127.0.0.1:8940/screen"),
		Logger:    log.WithComponent("media"),
	}

	backend := backendapi.Client{
		BaseURL: envOrDefault("IVC_API_BASE_URL", "https://api.hirelens.io"),
	}

	return &app{
		creds:       creds,
		devices:     devices,
		backend:     backend,
		logger:      logger,
		detectorURL: envOrDefault("IVC_DETECTOR_URL", "ws://127.0.0.1:8941/detect"),
	}, nil
}

func (a *app) newClassifier() ports.FaceClassifier {
	return &detector.Classifier{URL: a.detectorURL}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
