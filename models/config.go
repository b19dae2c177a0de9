package models

type Config struct {
	Debug bool `envconfig:"MENDEL_DEBUG" yaml:"debug"`

	Api struct {
		Url                   string `envconfig:"MENDEL_API_URL" yaml:"url"`
		Port                  string `envconfig:"MENDEL_API_INTERNAL_PORT" default:"5000" yaml:"port"`
		MaxGenes              int    `envconfig:"MENDEL_API_MAX_GENES" default:"6" yaml:"maxGenes"`
		LargeGridThreshold    int    `envconfig:"MENDEL_API_LARGE_GRID_THRESHOLD" default:"64" yaml:"largeGridThreshold"`
		BatchConcurrencyLevel int    `envconfig:"MENDEL_API_BATCH_CONCURRENCY_LEVEL" default:"4" yaml:"batchConcurrencyLevel"`
		PresetsPath           string `envconfig:"MENDEL_API_PRESETS_PATH" yaml:"presetsPath"`
	} `yaml:"api"`

	Tutor struct {
		ApiKey         string `envconfig:"MENDEL_TUTOR_API_KEY" yaml:"apiKey"`
		Model          string `envconfig:"MENDEL_TUTOR_MODEL" default:"gemini-2.5-flash-preview-09-2025" yaml:"model"`
		BaseUrl        string `envconfig:"MENDEL_TUTOR_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta" yaml:"baseUrl"`
		TimeoutSeconds int    `envconfig:"MENDEL_TUTOR_TIMEOUT_SECONDS" default:"60" yaml:"timeoutSeconds"`
	} `yaml:"tutor"`

	AuthX struct {
		IsAuthorizationEnabled bool   `envconfig:"MENDEL_AUTHZ_ENABLED" yaml:"isAuthorizationEnabled"`
		AccessToken            string `envconfig:"MENDEL_AUTHZ_ACCESS_TOKEN" yaml:"accessToken"`
	} `yaml:"authX"`
}
