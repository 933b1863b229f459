package config

import (
	"errors"
	"fmt"
	"strings"
)

// Environment variables holding service credentials.
const (
	EnvAhaSubdomain     = "AHA_SUBDOMAIN"
	EnvAhaToken         = "AHA_API_TOKEN"
	EnvConfluenceDomain = "CONFLUENCE_DOMAIN"
	EnvConfluenceEmail  = "CONFLUENCE_EMAIL"
	EnvConfluenceToken  = "CONFLUENCE_API_TOKEN"
	keyAhaSubdomain     = "aha.subdomain"
	keyAhaToken         = "aha.api_token"
	keyConfluenceDomain = "confluence.domain"
	keyConfluenceEmail  = "confluence.email"
	keyConfluenceToken  = "confluence.api_token"
)

// ErrCredentials is returned when a service's required credentials are absent.
var ErrCredentials = errors.New("credentials not configured")

// AhaCredentials identifies an Aha! account.
type AhaCredentials struct {
	Subdomain string
	Token     string
}

// ConfluenceCredentials identifies a Confluence Cloud site.
type ConfluenceCredentials struct {
	Domain string // host only, scheme stripped
	Email  string
	Token  string
}

// Aha resolves Aha! credentials from the environment. It is called once per
// request, so changes to the environment take effect immediately.
func Aha() (AhaCredentials, error) {
	creds := AhaCredentials{
		Subdomain: strings.TrimSpace(GetString(keyAhaSubdomain)),
		Token:     strings.TrimSpace(GetString(keyAhaToken)),
	}
	if creds.Subdomain == "" || creds.Token == "" {
		return AhaCredentials{}, fmt.Errorf("Aha! %w. %s and %s environment variables are required.",
			ErrCredentials, EnvAhaSubdomain, EnvAhaToken)
	}
	return creds, nil
}

// Confluence resolves Confluence credentials from the environment.
func Confluence() (ConfluenceCredentials, error) {
	creds := ConfluenceCredentials{
		Domain: StripScheme(strings.TrimSpace(GetString(keyConfluenceDomain))),
		Email:  strings.TrimSpace(GetString(keyConfluenceEmail)),
		Token:  strings.TrimSpace(GetString(keyConfluenceToken)),
	}
	if creds.Domain == "" || creds.Email == "" || creds.Token == "" {
		return ConfluenceCredentials{}, fmt.Errorf("Confluence %w. %s, %s, and %s environment variables are required.",
			ErrCredentials, EnvConfluenceDomain, EnvConfluenceEmail, EnvConfluenceToken)
	}
	return creds, nil
}

// StripScheme removes a leading http:// or https:// and any trailing slash.
func StripScheme(domain string) string {
	lower := strings.ToLower(domain)
	switch {
	case strings.HasPrefix(lower, "https://"):
		domain = domain[len("https://"):]
	case strings.HasPrefix(lower, "http://"):
		domain = domain[len("http://"):]
	}
	return strings.TrimSuffix(domain, "/")
}
