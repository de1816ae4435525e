package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrContentDirRequired     = runtimeconfig.ErrContentDirRequired
	ErrDefaultLocaleRequired  = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleUnknown   = runtimeconfig.ErrDefaultLocaleUnknown
	ErrLocalesRequired        = runtimeconfig.ErrLocalesRequired
	ErrRelatedLimitInvalid    = runtimeconfig.ErrRelatedLimitInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	ContentConfig   = runtimeconfig.ContentConfig
	DirectoryConfig = runtimeconfig.DirectoryConfig
	MarkdownConfig  = runtimeconfig.MarkdownConfig
	RelatedConfig   = runtimeconfig.RelatedConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
