// Package constants holds string values shared between configuration and infrastructure.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable via pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Pub/Sub message attribute keys.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)
