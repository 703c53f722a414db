package docintel

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// CognitiveServicesScope is the Entra ID scope accepted by Document Intelligence.
const CognitiveServicesScope = "https://cognitiveservices.azure.com/.default"

const entraAuthority = "https://login.microsoftonline.com"

// EntraCredentials identifies a Microsoft Entra ID application registration.
type EntraCredentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// AuthorityURL overrides the login host, mainly for sovereign clouds.
	AuthorityURL string
}

// EntraTokenSource returns a cached client-credentials token source for the
// Document Intelligence scope.
func EntraTokenSource(ctx context.Context, creds EntraCredentials) (oauth2.TokenSource, error) {
	tenant := strings.TrimSpace(creds.TenantID)
	clientID := strings.TrimSpace(creds.ClientID)
	secret := strings.TrimSpace(creds.ClientSecret)
	if tenant == "" || clientID == "" || secret == "" {
		return nil, fmt.Errorf("entra tenant, client id and client secret are required: %w", ErrNotConfigured)
	}

	authority := strings.TrimRight(strings.TrimSpace(creds.AuthorityURL), "/")
	if authority == "" {
		authority = entraAuthority
	}

	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: secret,
		TokenURL:     authority + "/" + tenant + "/oauth2/v2.0/token",
		Scopes:       []string{CognitiveServicesScope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return cfg.TokenSource(ctx), nil
}
