package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DialectPostgres, cfg.Database.Dialect)
	assert.Equal(t, ".", cfg.Scaffold.BaseDir)
	assert.False(t, cfg.Scaffold.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9090
database:
  dialect: sqlite
  name: admin.db
scaffold:
  base_dir: /srv/app
  format: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DialectSQLite, cfg.Database.Dialect)
	assert.Equal(t, "admin.db", cfg.Database.DSN())
	assert.Equal(t, "/srv/app", cfg.Scaffold.BaseDir)
	assert.True(t, cfg.Scaffold.Format)
	// Values absent from the file keep their defaults.
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  host: filehost\n"), 0644))

	t.Setenv("DB_HOST", "envhost")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SCAFFOLD_FORMAT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "envhost", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Scaffold.Format)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_UnsupportedDialect(t *testing.T) {
	cfg := Default()
	cfg.Database.Dialect = "oracle"
	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	tests := []struct {
		name string
		db   Database
		want string
	}{
		{
			name: "postgres",
			db:   Database{Dialect: DialectPostgres, Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable", TimeZone: "UTC"},
			want: "host=h user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC",
		},
		{
			name: "mysql",
			db:   Database{Dialect: DialectMySQL, Host: "h", Port: "3306", User: "u", Password: "p", Name: "n"},
			want: "u:p@tcp(h:3306)/n?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "raw dsn wins",
			db:   Database{Dialect: DialectMySQL, RawDSN: "custom"},
			want: "custom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.DSN())
		})
	}
}
