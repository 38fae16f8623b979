package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// PostsPerPage is the board page size.
	PostsPerPage = 15
	// MaxUploadBytes caps a single media upload.
	MaxUploadBytes = 10 << 20

	// DefaultAdminId seeds the admin registry on an empty collection.
	DefaultAdminId       = "admin"
	DefaultAdminName     = "system administrator"
	DefaultAdminPassword = "admin1234"
)

// LoadDotEnvs loads optional .env files. Local overrides win over the
// shared file; real deployments set env vars directly and ship neither.
func LoadDotEnvs() {
	godotenv.Load(".env.local")
	godotenv.Load(".env")
}

func StorageBucket() string {
	return os.Getenv("STORAGE_BUCKET")
}

// FrontendOrigins returns the allowed CORS origins, semicolon
// separated in FE_ORIGINS.
func FrontendOrigins() []string {
	origins := os.Getenv("FE_ORIGINS")
	if origins == "" {
		return []string{"http://localhost:3000"}
	}
	return strings.Split(origins, ";")
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

// ConfigureFirebaseCredentials makes sure the firebase SDK can find
// service-account credentials: either a path already in the env, or a
// JSON blob written out to a local file.
func ConfigureFirebaseCredentials() error {
	if _, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar); hasCredentialsPath {
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		if err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400); err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		if err := os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile); err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
