package clickup

import (
	"os"
	"strings"
)

// APIKeyEnv is the environment variable holding the ClickUp personal API token.
const APIKeyEnv = "CLICKUP_API_KEY"

// CredentialSource supplies the API token for a single request.
// Implementations are consulted on every call, so rotating the token
// does not require a restart.
type CredentialSource interface {
	Resolve() (string, error)
}

// EnvCredentials reads the token from the process environment.
type EnvCredentials struct {
	// Var is the variable name. Empty means APIKeyEnv.
	Var string

	// Lookup replaces os.LookupEnv, mainly for tests.
	Lookup func(string) (string, bool)
}

// Resolve returns the token unmodified. A missing or blank variable yields
// a KindMissingCredential error carrying the remediation hint.
func (e EnvCredentials) Resolve() (string, error) {
	name := e.Var
	if name == "" {
		name = APIKeyEnv
	}
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	token, ok := lookup(name)
	if !ok || strings.TrimSpace(token) == "" {
		return "", &Error{Kind: KindMissingCredential}
	}
	return token, nil
}

// StaticToken is a fixed credential.
type StaticToken string

// Resolve returns the token, or KindMissingCredential when it is blank.
func (s StaticToken) Resolve() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", &Error{Kind: KindMissingCredential}
	}
	return string(s), nil
}
