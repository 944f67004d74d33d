// internal/infra/config/config.go
package config

import (
	"os"
	"strings"
)

// Config holds environment-derived settings for the store backend.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string
	GCPCreds                 string

	// Bucket holding product images (public objects).
	ProductImageBucket string

	// Directory for the local snapshot store (durability fallback).
	SnapshotDir string

	// Identity Toolkit web API key. Usually resolved from Secret Manager;
	// this env value is the fallback.
	WebAPIKey string
	// Secret Manager secret id holding the web API key.
	WebAPIKeySecretID string

	// SendGrid
	SendGridAPIKey string
	MailFrom       string

	// Extra hostnames (comma separated) where Google popup sign-in is allowed,
	// on top of the built-in allow-list.
	GoogleAuthDomains []string
}

// Load reads configuration from environment variables.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "sunshinesaree-540e7")

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		ProductImageBucket: getenvDefault("PRODUCT_IMAGE_BUCKET", "sunshinesaree-540e7.firebasestorage.app"),

		SnapshotDir: getenvDefault("SNAPSHOT_DIR", ".snapshots"),

		WebAPIKey:         os.Getenv("WEB_API_KEY"),
		WebAPIKeySecretID: getenvDefault("WEB_API_KEY_SECRET_ID", "store-web-api-key"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getenvDefault("MAIL_FROM", "orders@sunshinesaree.com"),

		GoogleAuthDomains: splitCSV(os.Getenv("GOOGLE_AUTH_DOMAINS")),
	}

	return cfg
}

// GetFirestoreProjectID returns the Firestore/GCP project id.
func (c *Config) GetFirestoreProjectID() string {
	return c.FirestoreProjectID
}

// GetFirebaseProjectID returns the project id used for Firebase Auth.
func (c *Config) GetFirebaseProjectID() string {
	return c.FirebaseProjectID
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
