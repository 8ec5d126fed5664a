package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"FASTDRC_ADDR", "LOG_LEVEL", "ZGW_TIMEOUT", "REDIS_URL", "TRANSLATION_PARAMETERS_KEY", "DATASOURCE_SQL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ZGW.Timeout)
	assert.Equal(t, "/catalogi/api/v1/informatieobjecttypen", cfg.ZGW.EndpointInformatieObjectType)
	assert.Equal(t, DefaultTranslationParametersKey, cfg.TranslationParametersKey)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnvTranslationParameters(t *testing.T) {
	t.Setenv("DATASOURCE_DRIVER_CLASS_NAME", "org.postgresql.Driver")
	t.Setenv("DATASOURCE_URL", "jdbc:postgresql://db:5432/drc")
	t.Setenv("DATASOURCE_SQL", "SELECT 1 WHERE '${UUID}' <> ''")
	t.Setenv("ZGW_TIMEOUT", "2s")
	t.Setenv("OPENZAAK_BASE_URL", "http://openzaak.local")

	cfg := FromEnv()

	assert.Equal(t, "org.postgresql.Driver", cfg.TranslationParameters["datasource.driverClassName"])
	assert.Equal(t, "jdbc:postgresql://db:5432/drc", cfg.TranslationParameters["datasource.url"])
	assert.Equal(t, "SELECT 1 WHERE '${UUID}' <> ''", cfg.TranslationParameters["datasource.sql"])
	assert.Equal(t, 2*time.Second, cfg.ZGW.Timeout)
	assert.Equal(t, "http://openzaak.local", cfg.ZGW.BaseURL)
}
