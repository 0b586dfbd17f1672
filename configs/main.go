package configs

import (
	"os"
	"path"
	"path/filepath"
	"reflect"

	"github.com/spf13/viper"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	projectConfigs *Config
	userConfigs    *Config
	GenieToken     string
	GenieHost      string
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Configs) unmarshalConfig(config *Config, data interface{}) error {
	err := config.viper.ReadInConfig()
	if err != nil {
		return err
	}
	return config.viper.Unmarshal(&data)
}

func (c *Configs) marshalConfig(config *Config, cfg interface{}) error {
	reflectCfg := reflect.ValueOf(cfg)
	for i := 0; i < reflectCfg.NumField(); i++ {
		k := reflectCfg.Type().Field(i).Name
		v := reflectCfg.Field(i).Interface()
		config.viper.Set(k, v)
	}

	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}

	err = config.viper.WriteConfig()

	return err
}

func New() *Configs {
	// Project config stored next to the app source (<project>/.genie)
	// Holds the linked app name
	projectDir, err := filepath.Abs("./.genie")
	if err != nil {
		panic(err)
	}
	projectViper := viper.New()

	projectPath := path.Join(projectDir, "config.json")
	projectViper.SetConfigFile(projectPath)
	projectViper.ReadInConfig()

	projectConfig := &Config{
		viper:      projectViper,
		configPath: projectPath,
	}

	// User config stored in the home dir (~/.genie)
	// Holds the workspace host and API token
	userViper := viper.New()
	userPath := path.Join(os.Getenv("HOME"), ".genie/config.json")
	userViper.SetConfigFile(userPath)
	userViper.ReadInConfig()

	userConfig := &Config{
		viper:      userViper,
		configPath: userPath,
	}

	return &Configs{
		projectConfigs: projectConfig,
		userConfigs:    userConfig,
		GenieToken:     os.Getenv("GENIE_TOKEN"),
		GenieHost:      os.Getenv("GENIE_HOST"),
	}
}
