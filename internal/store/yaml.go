package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/cocomo/internal/model"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile returns the default config file name
const DefaultConfigFile = ".cocomo.yml"

// ProjectFileSuffix is the suffix of project files
const ProjectFileSuffix = ".cocomo-project.yml"

// EnvPrefix is the prefix of environment variables overriding the configuration
const EnvPrefix = "COCOMO"

// YAMLStore handles reading and writing project and config files
type YAMLStore struct {
	configFile string
}

// NewYAMLStore creates a new YAML store with the given config file path
func NewYAMLStore(configFile string) *YAMLStore {
	return &YAMLStore{
		configFile: configFile,
	}
}

// LoadConfig loads the configuration from the config file, then applies
// COCOMO_* environment overrides.
// If no specific config file is set, it searches for the config file
// starting from the current directory and traversing up to parent directories
func (s *YAMLStore) LoadConfig() (*model.Config, error) {
	configPath := s.configFile

	if configPath == "" {
		found, err := findConfigFile(DefaultConfigFile)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	config := model.DefaultConfig()

	if configPath != "" {
		if err := loadConfigFromFile(configPath, config); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findConfigFile searches for the config file starting from the current directory
// and traversing up to parent directories until it finds the file or reaches the root
func findConfigFile(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// loadConfigFromFile reads the file over the given defaults.
// A missing file leaves the defaults untouched.
func loadConfigFromFile(configPath string, config *model.Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			zap.S().Debugf("configuration file %s not found, using defaults", configPath)
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	zap.S().Debugf("loaded configuration from %s", configPath)
	return nil
}

// SaveConfig saves the configuration to the config file
func (s *YAMLStore) SaveConfig(config *model.Config) error {
	configPath := s.configFile
	if configPath == "" {
		configPath = DefaultConfigFile
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// LoadProject loads a project from a file
func (s *YAMLStore) LoadProject(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeProject(data)
}

// LoadOrCreateProject loads a project from a file, or creates a new one if it doesn't exist
func (s *YAMLStore) LoadOrCreateProject(path string, label string) (*model.Project, bool, error) {
	project, err := s.LoadProject(path)
	if err == nil {
		return project, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}

	project, err = s.CreateProject(path, label)
	if err != nil {
		return nil, false, err
	}
	return project, true, nil
}

// SaveProject saves a project to a file. Invalid projects are not written.
func (s *YAMLStore) SaveProject(path string, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	data, err := yaml.Marshal(project)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateProject creates a new project file
func (s *YAMLStore) CreateProject(path string, label string) (*model.Project, error) {
	project := model.NewProject(label)

	if err := s.SaveProject(path, project); err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects lists all project files in a directory
func (s *YAMLStore) ListProjects(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return filterProjectFiles(entries), nil
}

// DecodeProject parses a project file and fills in missing collections
func DecodeProject(data []byte) (*model.Project, error) {
	project := &model.Project{}
	if err := yaml.Unmarshal(data, project); err != nil {
		return nil, err
	}

	if project.Ratings == nil {
		project.Ratings = make(map[string]string)
	}

	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	return project, nil
}

func filterProjectFiles(entries []os.DirEntry) []string {
	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ProjectFileSuffix) {
			files = append(files, entry.Name())
		}
	}
	return files
}

// Store interface for dependency injection
type Store interface {
	LoadConfig() (*model.Config, error)
	SaveConfig(config *model.Config) error
	LoadProject(path string) (*model.Project, error)
	SaveProject(path string, project *model.Project) error
	CreateProject(path string, label string) (*model.Project, error)
	ListProjects(dir string) ([]string, error)
}

// Ensure YAMLStore implements Store interface
var _ Store = (*YAMLStore)(nil)
