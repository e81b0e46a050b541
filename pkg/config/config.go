package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Listings      ListingsConfig
	Mail          MailConfig
	Cron          CronConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PGTC_APP_ENV" required:"true"`
	Port         string `envconfig:"PGTC_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PGTC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PGTC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PGTC_DB_DSN"`
	Driver string `envconfig:"PGTC_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PGTC_DB_HOST"`
	LegacyPort     int    `envconfig:"PGTC_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PGTC_DB_USER"`
	LegacyPassword string `envconfig:"PGTC_DB_PASSWORD"`
	LegacyName     string `envconfig:"PGTC_DB_NAME"`
	LegacySSLMode  string `envconfig:"PGTC_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PGTC_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PGTC_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PGTC_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PGTC_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PGTC_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PGTC_REDIS_ADDR"`
	Password     string        `envconfig:"PGTC_REDIS_PASSWORD"`
	DB           int           `envconfig:"PGTC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PGTC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PGTC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PGTC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PGTC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PGTC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"PGTC_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"PGTC_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"PGTC_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"PGTC_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PGTC_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PGTC_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PGTC_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PGTC_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PGTC_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"PGTC_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"PGTC_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"PGTC_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"PGTC_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"PGTC_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"PGTC_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type ListingsConfig struct {
	ExpiryDays     int `envconfig:"PGTC_LISTING_EXPIRY_DAYS" default:"90"`
	PublicPageSize int `envconfig:"PGTC_LISTING_PAGE_SIZE" default:"12"`
	AdminMaxRows   int `envconfig:"PGTC_LISTING_ADMIN_MAX_ROWS" default:"100"`
}

type MailConfig struct {
	SMTPHost    string `envconfig:"PGTC_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort    int    `envconfig:"PGTC_SMTP_PORT" default:"587"`
	SMTPUser    string `envconfig:"PGTC_SMTP_USER"`
	SMTPPass    string `envconfig:"PGTC_SMTP_PASSWORD"`
	FromAddress string `envconfig:"PGTC_MAIL_FROM" default:"noreply@pologtclub.com"`
	AdminInbox  string `envconfig:"PGTC_MAIL_ADMIN_INBOX" default:"admin@pologtclub.com"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"PGTC_CRON_INTERVAL" default:"24h"`
	LockTTL  time.Duration `envconfig:"PGTC_CRON_LOCK_TTL" default:"25h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PGTC_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PGTC_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
