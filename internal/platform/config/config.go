package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string
	ZGW      ZGWConfig
	Redis    RedisConfig
	// TranslationParameters are the datasource.* parameters read from the
	// environment. Ignored when Redis.URL is set.
	TranslationParameters map[string]string
	// TranslationParametersKey is the Redis hash holding the parameters.
	TranslationParametersKey string
}

// ZGWConfig locates the ZGW registry and carries the client credentials.
type ZGWConfig struct {
	BaseURL                             string
	EndpointZaak                        string
	EndpointEnkelvoudigInformatieObject string
	EndpointInformatieObjectType        string
	ClientID                            string
	Secret                              string
	Timeout                             time.Duration
	// BreakerThreshold consecutive failures open the registry circuit for
	// BreakerCooldown.
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// RedisConfig configures the optional Redis connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultTranslationParametersKey is the hash read when no key is configured.
const DefaultTranslationParametersKey = "fastdrc:translation:GeefLijstZaakdocumenten"

// translationParameterEnv maps environment variables onto parameter names.
var translationParameterEnv = map[string]string{
	"DATASOURCE_DRIVER_CLASS_NAME": "datasource.driverClassName",
	"DATASOURCE_URL":               "datasource.url",
	"DATASOURCE_USERNAME":          "datasource.username",
	"DATASOURCE_PASSWORD":          "datasource.password",
	"DATASOURCE_SQL":               "datasource.sql",
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	params := make(map[string]string, len(translationParameterEnv))
	for env, name := range translationParameterEnv {
		if v, ok := os.LookupEnv(env); ok {
			params[name] = v
		}
	}

	return Server{
		Addr:     getEnv("FASTDRC_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		ZGW: ZGWConfig{
			BaseURL:                             os.Getenv("OPENZAAK_BASE_URL"),
			EndpointZaak:                        getEnv("ZGW_ENDPOINT_ZAAK", "/zaken/api/v1/zaken"),
			EndpointEnkelvoudigInformatieObject: getEnv("ZGW_ENDPOINT_ENKELVOUDIGINFORMATIEOBJECT", "/documenten/api/v1/enkelvoudiginformatieobjecten"),
			EndpointInformatieObjectType:        getEnv("ZGW_ENDPOINT_INFORMATIEOBJECTTYPE", "/catalogi/api/v1/informatieobjecttypen"),
			ClientID:                            os.Getenv("ZGW_CLIENT_ID"),
			Secret:                              os.Getenv("ZGW_SECRET"),
			Timeout:                             getDuration("ZGW_TIMEOUT", 10*time.Second),
			BreakerThreshold:                    getInt("ZGW_BREAKER_THRESHOLD", 5),
			BreakerCooldown:                     getDuration("ZGW_BREAKER_COOLDOWN", 5*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		TranslationParameters:    params,
		TranslationParametersKey: getEnv("TRANSLATION_PARAMETERS_KEY", DefaultTranslationParametersKey),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
