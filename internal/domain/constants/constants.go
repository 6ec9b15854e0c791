// Package constants contains values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Alert providers
const (
	AlertProviderWhatsApp = "whatsapp"
	AlertProviderFirebase = "firebase"
)

// Error log sources
const (
	SourceBack  = "back"
	SourceFront = "front"
)
