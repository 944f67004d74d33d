// internal/platform/di/infra.go
package di

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"log"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "sunshinesaree/internal/infra/config"
	firestoreinfra "sunshinesaree/internal/infra/firestore"
	"sunshinesaree/internal/infra/localstore"
)

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager)
// - owns the local snapshot store (durability fallback replica)
// - owns env/config-resolved runtime settings
//
// Infra must NOT depend on routers, handlers, or application services.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestoreinfra.ClientWrapper
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client

	// Local snapshot store (always available)
	Local *localstore.Store

	// Resolved once at startup
	WebAPIKey          string
	ProductImageBucket string
}

// NewInfra initializes shared infra.
// Firestore and the local store are strict (return error).
// Firebase/Auth, GCS and SecretManager are best-effort (warn + continue);
// the storefront degrades to local-only persistence without them.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("di.infra: config is nil")
	}

	projectID := resolveProjectID(cfg)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}

	inf := &Infra{
		Config:             cfg,
		ProjectID:          projectID,
		ProductImageBucket: strings.TrimSpace(cfg.ProductImageBucket),
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] using credentials file for GCP clients: %s", redactPath(credFile))
	} else {
		log.Printf("[di.infra] using Application Default Credentials")
	}

	// 1) Local snapshot store (strict; it is the fallback replica)
	{
		local, err := localstore.New(cfg.SnapshotDir)
		if err != nil {
			return nil, fmt.Errorf("di.infra: local snapshot store init failed (dir=%s): %w", cfg.SnapshotDir, err)
		}
		inf.Local = local
		log.Printf("[di.infra] local snapshot store ready dir=%s", cfg.SnapshotDir)
	}

	// 2) Firestore (strict)
	{
		fs, err := firestoreinfra.NewClient(ctx, inf.ProjectID, credFile)
		if err != nil {
			return nil, fmt.Errorf("di.infra: firestore init failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fs
		log.Printf("[di.infra] firestore connected project=%s", inf.ProjectID)
	}

	// 3) GCS (best-effort; product images fall back to raw paths)
	{
		var gcsClient *storage.Client
		var err error
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di.infra] WARN: storage.NewClient failed: %v (image URLs unresolved)", err)
		} else {
			inf.GCS = gcsClient
		}
	}

	// 4) Firebase App/Auth (best-effort)
	{
		fbCfg := &firebase.Config{ProjectID: inf.ProjectID}
		var fbApp *firebase.App
		var err error
		if len(clientOpts) > 0 {
			fbApp, err = firebase.NewApp(ctx, fbCfg, clientOpts...)
		} else {
			fbApp, err = firebase.NewApp(ctx, fbCfg)
		}
		if err != nil {
			log.Printf("[di.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, aerr := fbApp.Auth(ctx)
			if aerr != nil {
				log.Printf("[di.infra] WARN: firebase auth init failed: %v", aerr)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[di.infra] firebase auth initialized")
			}
		}
	}

	// 5) Secret Manager (best-effort)
	{
		var sm *secretmanager.Client
		var err error
		if len(clientOpts) > 0 {
			sm, err = secretmanager.NewClient(ctx, clientOpts...)
		} else {
			sm, err = secretmanager.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di.infra] WARN: secretmanager.NewClient failed: %v", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// 6) Web API key: Secret Manager first, env fallback
	inf.WebAPIKey = inf.resolveWebAPIKey(ctx)
	if inf.WebAPIKey == "" {
		log.Printf("[di.infra] WARN: web API key unresolved (email/password sign-in disabled)")
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	return nil
}

// resolveWebAPIKey reads the Identity Toolkit key from Secret Manager,
// falling back to the WEB_API_KEY env value.
func (i *Infra) resolveWebAPIKey(ctx context.Context) string {
	secretID := strings.TrimSpace(i.Config.WebAPIKeySecretID)
	if i.SecretManager != nil && secretID != "" {
		name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", i.ProjectID, secretID)
		resp, err := i.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
			Name: name,
		})
		if err != nil {
			log.Printf("[di.infra] WARN: access secret %s failed: %v (env fallback)", secretID, err)
		} else if resp != nil && resp.Payload != nil {
			data := resp.Payload.GetData()
			if crc := resp.Payload.GetDataCrc32C(); crc != 0 {
				sum := crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli))
				if int64(sum) != crc {
					log.Printf("[di.infra] WARN: secret %s checksum mismatch (env fallback)", secretID)
					data = nil
				}
			}
			if key := strings.TrimSpace(string(data)); key != "" {
				log.Printf("[di.infra] web API key resolved from secret manager")
				return key
			}
		}
	}
	return strings.TrimSpace(i.Config.WebAPIKey)
}

func resolveProjectID(cfg *appcfg.Config) string {
	if cfg != nil {
		if v := strings.TrimSpace(cfg.FirestoreProjectID); v != "" {
			return v
		}
	}
	for _, k := range []string{
		"FIRESTORE_PROJECT_ID",
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func redactPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	parts := strings.Split(p, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***/" + last
}
