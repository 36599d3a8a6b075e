// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderNoop   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session token providers.
const (
	SessionProviderJWT      = "jwt"
	SessionProviderFirebase = "firebase"
)

// Mail providers.
const (
	MailProviderNoop = ""
	MailProviderAPI  = "api"
	MailProviderSMTP = "smtp"
)
