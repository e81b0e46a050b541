package config

// EnvPrefix namespaces every environment variable the platform reads.
const EnvPrefix = "PGTC"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "PGTC_DB_DSN"
	EnvDBHost = "PGTC_DB_HOST"
	EnvDBUser = "PGTC_DB_USER"
	EnvDBName = "PGTC_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
