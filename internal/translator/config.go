package translator

import (
	"database/sql"
	"fmt"
	"net/url"
	"slices"
	"strings"

	dErrors "fastdrc/pkg/domain-errors"
)

// Parameter names read from the ParameterStore.
const (
	ParamDriverClassName = "datasource.driverClassName"
	ParamURL             = "datasource.url"
	ParamUsername        = "datasource.username"
	ParamPassword        = "datasource.password"
	ParamSQL             = "datasource.sql"
)

// UUIDPlaceholder is replaced by the zaak uuid in the configured statement.
const UUIDPlaceholder = "${UUID}"

// driverAliases maps JDBC driver class names found in existing translation
// configurations onto the database/sql driver that serves the same database.
var driverAliases = map[string]string{
	"org.postgresql.Driver": "postgres",
}

// ParameterStore supplies translation parameters by name.
type ParameterStore interface {
	Parameter(name string) (string, bool)
}

// Config is the datasource configuration of a translator. It is immutable
// after construction and shared by concurrent requests.
type Config struct {
	Driver   string
	URL      string
	Username string
	Password string
	SQL      string
}

// LoadConfig reads and validates the five datasource parameters. A missing or
// empty parameter, or a driver that is not registered with database/sql, is a
// configuration error.
func LoadConfig(params ParameterStore) (Config, error) {
	if params == nil {
		return Config{}, dErrors.New(dErrors.CodeConfiguration, "parameter store is required")
	}
	var cfg Config
	for _, p := range []struct {
		name string
		dst  *string
	}{
		{ParamDriverClassName, &cfg.Driver},
		{ParamURL, &cfg.URL},
		{ParamUsername, &cfg.Username},
		{ParamPassword, &cfg.Password},
		{ParamSQL, &cfg.SQL},
	} {
		v, ok := params.Parameter(p.name)
		if !ok || v == "" {
			return Config{}, dErrors.New(dErrors.CodeConfiguration,
				fmt.Sprintf("required parameter '%s' is not defined", p.name))
		}
		*p.dst = v
	}

	if alias, ok := driverAliases[cfg.Driver]; ok {
		cfg.Driver = alias
	}
	if !slices.Contains(sql.Drivers(), cfg.Driver) {
		return Config{}, dErrors.New(dErrors.CodeConfiguration, "error loading database driver:"+cfg.Driver).
			WithDetail("registered drivers: " + strings.Join(sql.Drivers(), ","))
	}
	return cfg, nil
}

// Statement substitutes every placeholder with the zaak uuid.
func (c Config) Statement(zaakUUID string) string {
	return strings.ReplaceAll(c.SQL, UUIDPlaceholder, zaakUUID)
}

// DataSourceName combines URL and credentials into a DSN the drivers accept.
// URL-style locations get the credentials as userinfo (a leading "jdbc:" is
// dropped); keyword/value locations get user and password keywords appended.
func (c Config) DataSourceName() string {
	location := strings.TrimPrefix(c.URL, "jdbc:")
	if strings.Contains(location, "://") {
		u, err := url.Parse(location)
		if err == nil {
			if u.User == nil {
				u.User = url.UserPassword(c.Username, c.Password)
			}
			return u.String()
		}
	}
	return fmt.Sprintf("%s user=%s password=%s", c.URL, quoteKeyword(c.Username), quoteKeyword(c.Password))
}

func quoteKeyword(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
