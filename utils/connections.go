package utils

import (
	"fmt"
	"mendel/api/models"
	"mendel/api/repositories/gemini"
	"time"
)

func CreateTutorConnection(cfg *models.Config) *gemini.Client {
	client := gemini.NewClient(
		cfg.Tutor.ApiKey,
		cfg.Tutor.Model,
		cfg.Tutor.BaseUrl,
		time.Duration(cfg.Tutor.TimeoutSeconds)*time.Second)

	if cfg.Tutor.ApiKey == "" {
		fmt.Printf("No tutor API key configured; /learn and /quiz will respond 503\n")
	} else {
		fmt.Printf("Using tutor model %s\n", client.Model())
	}

	return client
}
