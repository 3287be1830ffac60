package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL はタスクデータ取得元のデフォルトURLです
const DefaultAPIURL = "https://jsonplaceholder.typicode.com"

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// データ取得元API設定
	APIURL string `yaml:"api_url"`

	// 出力先
	OutputDir  string `yaml:"output_dir"`
	BulkOutput string `yaml:"bulk_output"`

	// ログレベル (info, warn, error, quiet)
	LogLevel string `yaml:"log_level"`
}

// Default はデフォルト値だけを持つ設定を返します
func Default() *Config {
	return &Config{
		APIURL:     DefaultAPIURL,
		OutputDir:  ".",
		BulkOutput: "todo_all_employees.json",
		LogLevel:   "info",
	}
}

// LoadConfig は .env・YAMLファイル・環境変数の順に設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("TODO_CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.APIURL = getEnvWithDefault("TODO_API_URL", cfg.APIURL)
	cfg.OutputDir = getEnvWithDefault("OUTPUT_DIR", cfg.OutputDir)
	cfg.BulkOutput = getEnvWithDefault("BULK_OUTPUT", cfg.BulkOutput)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", cfg.LogLevel)

	cfg.normalize()
	return cfg, nil
}

// LoadFile はYAMLファイルの値で設定を上書きします。ファイルに無いキーは変更しません
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("設定ファイル読み込みエラー: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("設定ファイル解析エラー: %w", err)
	}
	c.normalize()
	return nil
}

// SetAPIURL はコマンドライン等で指定されたURLを正規化して設定します
func (c *Config) SetAPIURL(rawURL string) {
	c.APIURL = rawURL
	c.normalize()
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
