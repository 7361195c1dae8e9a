// Package constants defines shared configuration constants.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Trigger transport providers.
const (
	TriggerProviderPush = "push"
	TriggerProviderPull = "pull"
)
