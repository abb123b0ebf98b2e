package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server: {}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(20), cfg.Server.MaxUploadMB)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "eng", cfg.OCR.DefaultLang)
	assert.Equal(t, int64(20*1024*1024), cfg.MaxUploadBytes())
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 9090
  maxUploadMB: 5
  apiKeys: ["k1", "k2"]
database:
  driver: postgres
  host: db.local
  port: 5432
  user: icis
  password: secret
  name: workbench
  sslmode: require
ocr:
  tesseractBin: /usr/local/bin/tesseract
  defaultLang: eng+deu
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Server.APIKeys)
	assert.Equal(t, "eng+deu", cfg.OCR.DefaultLang)
	assert.Equal(t,
		"host=db.local port=5432 user=icis password=secret dbname=workbench sslmode=require",
		cfg.PostgresDSN(),
	)
}

func TestMySQLDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  driver: mysql
  host: 127.0.0.1
  port: 3306
  user: root
  password: pw
  name: workbench
`))
	require.NoError(t, err)
	assert.Equal(t,
		"root:pw@tcp(127.0.0.1:3306)/workbench?parseTime=true&charset=utf8mb4&loc=UTC",
		cfg.MySQLDSN(),
	)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
