package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDBEnv(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDB_MissingFileReturnsDefaults(t *testing.T) {
	clearDBEnv(t)

	config, err := LoadDB(filepath.Join(t.TempDir(), "db_config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDB(), config)
}

func TestLoadDB_FileOverridesDefaults(t *testing.T) {
	clearDBEnv(t)

	path := filepath.Join(t.TempDir(), "db_config.json")
	content := `{"host": "db.internal", "port": 6543, "database": "fame", "user": "fame", "password": "secret"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadDB(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", config.Host)
	assert.Equal(t, "6543", config.Port.String())
	assert.Equal(t, "fame", config.Database)
	assert.Equal(t, "fame", config.User)
	assert.Equal(t, "secret", config.Password)
}

func TestLoadDB_PortAsString(t *testing.T) {
	clearDBEnv(t)

	path := filepath.Join(t.TempDir(), "db_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": "3306"}`), 0o600))

	config, err := LoadDB(path)
	require.NoError(t, err)
	assert.Equal(t, "3306", config.Port.String())
	assert.Equal(t, defaultDBHost, config.Host)
}

func TestLoadDB_EnvOverridesFile(t *testing.T) {
	clearDBEnv(t)

	path := filepath.Join(t.TempDir(), "db_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"host": "db.internal", "user": "fame"}`), 0o600))
	t.Setenv("DB_HOST", "override.internal")

	config, err := LoadDB(path)
	require.NoError(t, err)
	assert.Equal(t, "override.internal", config.Host)
	assert.Equal(t, "fame", config.User)
}

func TestLoadDB_MalformedFile(t *testing.T) {
	clearDBEnv(t)

	path := filepath.Join(t.TempDir(), "db_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"host":`), 0o600))

	_, err := LoadDB(path)
	assert.Error(t, err)
}

func TestSaveDB_RoundTrip(t *testing.T) {
	clearDBEnv(t)

	path := filepath.Join(t.TempDir(), "db_config.json")
	config := DB{Host: "h", Port: "5433", Database: "d", User: "u", Password: "p"}
	require.NoError(t, SaveDB(path, config))

	loaded, err := LoadDB(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
