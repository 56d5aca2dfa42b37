package doclane

import "github.com/doclane/doclane/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown   = runtimeconfig.ErrStorageProviderUnknown
	ErrWalkerConcurrencyInvalid = runtimeconfig.ErrWalkerConcurrencyInvalid
	ErrCommandsTimeoutInvalid   = runtimeconfig.ErrCommandsTimeoutInvalid
	ErrAIFeatureRequired        = runtimeconfig.ErrAIFeatureRequired
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	WalkerConfig   = runtimeconfig.WalkerConfig
	AIConfig       = runtimeconfig.AIConfig
	Features       = runtimeconfig.Features
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
