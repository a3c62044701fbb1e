package source

import (
	"net/http"

	"doctor-directory/config"

	"github.com/sirupsen/logrus"
)

// NewHTTPClient returns the client used to fetch the doctor document
func NewHTTPClient(cfg config.SourceConfig) *http.Client {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	logrus.WithFields(logrus.Fields{
		"url":     cfg.URL,
		"timeout": cfg.Timeout.String(),
	}).Info("Doctor source client configured")

	return client
}
