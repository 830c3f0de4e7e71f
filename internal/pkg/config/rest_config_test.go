//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestInitializeRestConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "appective.db")
	t.Setenv("AUTH_SESSION_SECRET", testSecret)

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, "/uploads", cfg.Storage.PublicURLPrefix)
	assert.Equal(t, "index.html", cfg.Storage.MastheadEntryFile)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Messaging.Enabled())
}

func TestInitializeRestConfig_ShortSecret(t *testing.T) {
	t.Setenv("DB_DSN", "appective.db")
	t.Setenv("AUTH_SESSION_SECRET", "too-short")

	_, err := InitializeRestConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthSettings")
}

func TestInitializeRestConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DB_DSN=from-file.db\nAUTH_SESSION_SECRET=" + testSecret + "\nSERVER_PORT=9090\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	// godotenv never overrides variables that are already set
	t.Setenv("SERVER_PORT", "7070")
	t.Cleanup(func() {
		os.Unsetenv("DB_DSN")
		os.Unsetenv("AUTH_SESSION_SECRET")
	})

	cfg, err := InitializeRestConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database.DSN)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestInitializeRestConfig_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("DB_DSN", "appective.db")
	t.Setenv("AUTH_SESSION_SECRET", testSecret)

	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestStorageSettingsValidation(t *testing.T) {
	valid := StorageSettings{
		PublicDir:         "./public",
		PrivateDir:        "./private",
		PublicURLPrefix:   "/uploads",
		MaxImageBytes:     1,
		MaxImageWidth:     1,
		MaxImageHeight:    1,
		MaxResumeBytes:    1,
		MaxArchiveBytes:   10,
		MaxArchiveEntries: 1,
		MaxExtractedBytes: 10,
		MastheadEntryFile: "index.html",
	}
	require.NoError(t, valid.Validate())

	sameDirs := valid
	sameDirs.PrivateDir = sameDirs.PublicDir
	assert.Error(t, sameDirs.Validate())

	badPrefix := valid
	badPrefix.PublicURLPrefix = "uploads"
	assert.Error(t, badPrefix.Validate())

	smallExtract := valid
	smallExtract.MaxExtractedBytes = 5
	assert.Error(t, smallExtract.Validate())
}
