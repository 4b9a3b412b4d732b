package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"prod"`

	SlackBotToken string `yaml:"-" env:"SLACK_BOT_TOKEN"`
	SlackAppToken string `yaml:"-" env:"SLACK_APP_TOKEN"`

	OpenAIAPIKey string `yaml:"-" env:"OPENAI_API_KEY"`
	ModelName    string `yaml:"model_name" env:"OPENAI_MODEL_NAME" env-default:"gpt-4o-mini"`
	APIBaseURL   string `yaml:"api_base_url" env:"API_BASE_URL" env-default:"https://api.openai.com/v1/chat/completions"`
	ExaAPIKey    string `yaml:"-" env:"EXA_API_KEY"`

	// QuestionsFile optionally overrides the built-in intake sequence.
	QuestionsFile string `yaml:"questions_file" env:"QUESTIONS_FILE"`
}

// Load reads settings from an optional yaml file plus environment variables.
// Missing Slack tokens are a fatal startup condition surfaced as an error.
func Load() (*AppConfig, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return loadFrom(fetchConfigPath())
}

func loadFrom(path string) (*AppConfig, error) {
	var cfg AppConfig
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	if c.SlackBotToken == "" || c.SlackAppToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN and SLACK_APP_TOKEN must be set")
	}
	return nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
