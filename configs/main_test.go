package configs_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genieiq/cli/configs"
	"github.com/genieiq/cli/entity"
)

func isolate(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "genie-configs")
	require.NoError(t, err)

	prevHome := os.Getenv("HOME")
	prevToken := os.Getenv("GENIE_TOKEN")
	prevHost := os.Getenv("GENIE_HOST")
	prevWd, err := os.Getwd()
	require.NoError(t, err)

	os.Setenv("HOME", dir)
	os.Unsetenv("GENIE_TOKEN")
	os.Unsetenv("GENIE_HOST")
	require.NoError(t, os.Chdir(dir))

	return func() {
		os.Setenv("HOME", prevHome)
		os.Setenv("GENIE_TOKEN", prevToken)
		os.Setenv("GENIE_HOST", prevHost)
		os.Chdir(prevWd)
		os.RemoveAll(dir)
	}
}

func TestUserConfigRoundtrip(t *testing.T) {
	defer isolate(t)()

	c := configs.New()
	_, err := c.GetUserConfigs()
	require.Error(t, err)

	require.NoError(t, c.SetUserConfigs(&entity.UserConfig{
		Host:  "https://ws.example.com",
		Token: "tok",
	}))

	got, err := configs.New().GetUserConfigs()
	require.NoError(t, err)
	require.Equal(t, "https://ws.example.com", got.Host)
	require.Equal(t, "tok", got.Token)
}

func TestEnvOverridesTakePrecedence(t *testing.T) {
	defer isolate(t)()

	c := configs.New()
	require.NoError(t, c.SetUserConfigs(&entity.UserConfig{
		Host:  "https://file.example.com",
		Token: "file-token",
	}))

	os.Setenv("GENIE_HOST", "https://env.example.com")
	os.Setenv("GENIE_TOKEN", "env-token")

	got, err := configs.New().GetUserConfigs()
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", got.Host)
	require.Equal(t, "env-token", got.Token)
}

func TestProjectConfigRoundtrip(t *testing.T) {
	defer isolate(t)()

	c := configs.New()
	_, err := c.GetApp()
	require.Error(t, err)

	require.NoError(t, c.SetApp("genieiq"))

	name, err := configs.New().GetApp()
	require.NoError(t, err)
	require.Equal(t, "genieiq", name)

	require.NoError(t, c.UnsetApp())
	_, err = configs.New().GetApp()
	require.Error(t, err)
}
