package secrets

import (
	"context"
	"encoding/base64"
	"fmt"
	"hash/crc32"

	"google.golang.org/api/option"
	secretmanager "google.golang.org/api/secretmanager/v1"
)

// RetrievalError is returned when a secret cannot be read from Secret Manager.
type RetrievalError struct {
	Name string
	Err  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to access secret %s: %v", e.Name, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

type SecretManagerLoader struct {
	service *secretmanager.Service
	version string
}

// NewSecretManagerLoader builds a loader on Application Default Credentials
// unless opts say otherwise. version is usually "latest".
func NewSecretManagerLoader(ctx context.Context, version string, opts ...option.ClientOption) (*SecretManagerLoader, error) {
	svc, err := secretmanager.NewService(ctx, opts...)
	if err != nil {
		return nil, &RetrievalError{Name: "secretmanager client", Err: err}
	}
	if version == "" {
		version = "latest"
	}
	return &SecretManagerLoader{service: svc, version: version}, nil
}

// Load returns the payload of projects/{projectID}/secrets/{secretName}/versions/{version}.
func (l *SecretManagerLoader) Load(ctx context.Context, projectID, secretName string) (string, error) {
	name := VersionName(projectID, secretName, l.version)

	resp, err := l.service.Projects.Secrets.Versions.Access(name).Context(ctx).Do()
	if err != nil {
		return "", &RetrievalError{Name: name, Err: err}
	}
	if resp.Payload == nil {
		return "", &RetrievalError{Name: name, Err: fmt.Errorf("empty payload")}
	}

	data, err := base64.StdEncoding.DecodeString(resp.Payload.Data)
	if err != nil {
		return "", &RetrievalError{Name: name, Err: fmt.Errorf("decode payload: %w", err)}
	}
	if len(data) == 0 {
		return "", &RetrievalError{Name: name, Err: fmt.Errorf("secret payload is empty")}
	}

	if resp.Payload.DataCrc32c != 0 {
		sum := int64(crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli)))
		if sum != resp.Payload.DataCrc32c {
			return "", &RetrievalError{Name: name, Err: fmt.Errorf("payload checksum mismatch")}
		}
	}

	return string(data), nil
}

func VersionName(projectID, secretName, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secretName, version)
}
