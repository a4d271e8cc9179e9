package health

import "context"

// UpstreamChecker checks catalog API availability.
type UpstreamChecker interface {
	HealthCheck(ctx context.Context) error
}

// CredentialChecker reports whether an upstream API key is configured.
type CredentialChecker interface {
	HasCredential() bool
}
