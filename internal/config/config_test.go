package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Store:  StoreConfig{BasePath: "/tmp/readmate"},
		Reader: ReaderConfig{LinesPerPage: 15},
		Quiz:   QuizConfig{MinimumWords: 10, OptionsCount: 3},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Environment(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "qa"
	assert.Error(t, cfg.Validate())

	cfg.App.Environment = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.Logger.Level = "DEBUG"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReaderAndQuiz(t *testing.T) {
	cfg := validConfig()
	cfg.Reader.LinesPerPage = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Quiz.OptionsCount = 1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Quiz.MinimumWords = 2
	cfg.Quiz.OptionsCount = 3
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	got, err := expandPath("", "/default/path")
	require.NoError(t, err)
	assert.Equal(t, "/default/path", got)

	got, err = expandPath("~/books", "")
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "books"), got)

	got, err = expandPath("/data//store/", "")
	require.NoError(t, err)
	assert.Equal(t, "/data/store", got)
}

func TestExpandCatalogPaths_Defaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.expandCatalogPaths())
	assert.Equal(t, filepath.Join("/tmp/readmate", "catalog.db"), cfg.Catalog.DatabasePath)
	assert.Empty(t, cfg.Catalog.ImportPath)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("READMATE_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "READMATE_TEST_KEY", "fallback"))
	assert.Equal(t, "from-env", getConfigValue("", "READMATE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getConfigValue("", "READMATE_TEST_MISSING", "fallback"))
}

func TestGetIntConfigValue(t *testing.T) {
	t.Setenv("READMATE_TEST_INT", "25")
	assert.Equal(t, 25, getIntConfigValue("", "READMATE_TEST_INT", 15))

	t.Setenv("READMATE_TEST_INT", "not-a-number")
	assert.Equal(t, 15, getIntConfigValue("", "READMATE_TEST_INT", 15))

	assert.Equal(t, 15, getIntConfigValue("", "READMATE_TEST_INT_MISSING", 15))
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("90s", "UNUSED", "15s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = parseDurationValue("", "UNUSED_MISSING", "15s")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	_, err = parseDurationValue("nonsense", "UNUSED", "15s")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\n\nREADMATE_ENVFILE_A=hello\nREADMATE_ENVFILE_B=\"quoted\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("READMATE_ENVFILE_A", "")
	t.Setenv("READMATE_ENVFILE_B", "")
	os.Unsetenv("READMATE_ENVFILE_A")
	os.Unsetenv("READMATE_ENVFILE_B")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("READMATE_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("READMATE_ENVFILE_B"))
}

func TestLoadEnvFile_BadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("JUSTAKEY\n"), 0o600))

	assert.Error(t, loadEnvFile(path))
}
