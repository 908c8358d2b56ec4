package appConfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/simplicity-js/installer/internal/ext"
	logger "github.com/simplicity-js/installer/internal/log"
)

const ConfigFileName = "simplicity-installer.yaml"

const (
	EnvName        = "SIMPLICITY_ENV"
	EnvGitHubToken = "SIMPLICITY_GITHUB_TOKEN"
	TestEnv        = "test"
)

const (
	DefaultOwner          = "simplicity-js"
	DefaultRepo           = "simplicity"
	DefaultArchiveFormat  = "zip"
	DefaultArchiveName    = "simplicity.zip"
	DefaultPackageManager = "npm"
	DefaultStartScript    = "npm run start"
	DefaultTokenFile      = ".github-token"
)

type TemplateConfig struct {
	Owner       string `yaml:"owner"`
	Repo        string `yaml:"repo"`
	Format      string `yaml:"format"`      // zip or tar
	ArchiveName string `yaml:"archiveName"` // file the archive is downloaded to inside the project directory
}

// ExtractedDirPrefix is the prefix GitHub gives the single top level folder of a repository archive.
func (t TemplateConfig) ExtractedDirPrefix() string {
	return fmt.Sprintf("%s-%s-", t.Owner, t.Repo)
}

type AppConfig struct {
	Template       TemplateConfig `yaml:"template"`
	PackageManager string         `yaml:"packageManager"`
	StartScript    string         `yaml:"startScript"`
	TokenFile      string         `yaml:"tokenFile"` // relative to the installer's own directory

	GitHubToken string `yaml:"-"`
	TestMode    bool   `yaml:"-"`
}

func Default() *AppConfig {
	config := &AppConfig{}
	config.applyDefaults()
	return config
}

// Load reads the optional .env file next to the installer, then the optional
// config file from workingDir or the home directory, and fills in defaults.
func Load(workingDir string, installerDir string) (*AppConfig, error) {
	envFile := filepath.Join(installerDir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warnf("could not load %s: %v", envFile, err)
	}

	config := &AppConfig{}
	configFilePath, found := findConfigFile(workingDir)
	if found {
		data, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("could not unmarshal config file %s: %w", configFilePath, err)
		}
		logger.Log.Debugf("Loaded configuration from %s", ext.ReplaceHomeDirWithTilde(configFilePath))
	}

	config.applyDefaults()
	config.TestMode = os.Getenv(EnvName) == TestEnv
	config.GitHubToken = os.Getenv(EnvGitHubToken)
	return config, nil
}

func findConfigFile(workingDir string) (string, bool) {
	configFilePath := filepath.Join(workingDir, ConfigFileName)
	if _, err := os.Stat(configFilePath); err == nil {
		return configFilePath, true
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	configFilePath = filepath.Join(homeDir, ConfigFileName)
	if _, err := os.Stat(configFilePath); err == nil {
		return configFilePath, true
	}
	return "", false
}

func (c *AppConfig) applyDefaults() {
	c.Template.Owner = ext.DefaultValue(c.Template.Owner, DefaultOwner)
	c.Template.Repo = ext.DefaultValue(c.Template.Repo, DefaultRepo)
	c.Template.Format = ext.DefaultValue(c.Template.Format, DefaultArchiveFormat)
	c.Template.ArchiveName = ext.DefaultValue(c.Template.ArchiveName, DefaultArchiveName)
	c.PackageManager = ext.DefaultValue(c.PackageManager, DefaultPackageManager)
	c.StartScript = ext.DefaultValue(c.StartScript, DefaultStartScript)
	c.TokenFile = ext.DefaultValue(c.TokenFile, DefaultTokenFile)
}
