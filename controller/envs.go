package controller

import (
	"github.com/joho/godotenv"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

const DefaultDatabasePort = "5432"

// BuildEnvironment constructs the complete replacement environment for the
// app. The previous deployment's variables are never merged in. Order is
// deterministic; the platform treats the list as an unordered set.
func BuildEnvironment(db *entity.DatabaseConfig) entity.Envs {
	return entity.Envs{
		{Name: "NODE_ENV", Value: "production"},
		{Name: "PORT", Value: "8080"},
		{Name: "LAKEBASE_HOST", Value: db.Host},
		{Name: "LAKEBASE_PORT", Value: db.Port},
		{Name: "LAKEBASE_DATABASE", Value: db.Database},
		{Name: "LAKEBASE_USER", Value: db.User},
		{Name: "LAKEBASE_PASSWORD", Value: db.Password},
	}
}

// LoadDatabaseConfig reads connection values from a dotenv file with
// DB_HOST, DB_PORT, DB_NAME, DB_USER and DB_PASSWORD keys.
func LoadDatabaseConfig(path string) (*entity.DatabaseConfig, error) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	db := &entity.DatabaseConfig{
		Host:     envMap["DB_HOST"],
		Port:     envMap["DB_PORT"],
		Database: envMap["DB_NAME"],
		User:     envMap["DB_USER"],
		Password: envMap["DB_PASSWORD"],
	}
	if db.Port == "" {
		db.Port = DefaultDatabasePort
	}

	return db, ValidateDatabaseConfig(db)
}

// ValidateDatabaseConfig checks that every connection parameter is present.
func ValidateDatabaseConfig(db *entity.DatabaseConfig) error {
	if db == nil || db.Host == "" || db.Port == "" || db.Database == "" || db.User == "" || db.Password == "" {
		return errors.DatabaseConfigMissing
	}
	return nil
}
