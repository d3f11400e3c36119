package entities

type CredentialKind string

const (
	CredentialAccessCode     CredentialKind = "access_code"
	CredentialPassword       CredentialKind = "password"
	CredentialSpectatorToken CredentialKind = "spectator_token"
	CredentialBearer         CredentialKind = "bearer"
)

// Credential is what a client presents when it connects or asks for a
// token. Identifier is only used by the password kind (username or email);
// Secret holds the access code, password, spectator token or bearer token.
type Credential struct {
	Kind       CredentialKind
	Identifier string
	Secret     string
}

func AccessCode(code string) Credential {
	return Credential{Kind: CredentialAccessCode, Secret: code}
}

func Password(identifier string, password string) Credential {
	return Credential{Kind: CredentialPassword, Identifier: identifier, Secret: password}
}

func SpectatorToken(token string) Credential {
	return Credential{Kind: CredentialSpectatorToken, Secret: token}
}

func Bearer(token string) Credential {
	return Credential{Kind: CredentialBearer, Secret: token}
}
