package config

// DeployCommitMessage is the message used for every deploy commit
const DeployCommitMessage = "deploy: update site"

// Environment variables read by sitekit
const (
	EnvDebug         = "DEBUG"
	EnvLogFile       = "SITEKIT_LOG_FILE"
	EnvLogMaxSize    = "SITEKIT_LOG_MAX_SIZE"
	EnvLogMaxBackups = "SITEKIT_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "SITEKIT_LOG_MAX_AGE"
)

// Class hooks the navigation markup is expected to carry
const (
	ToggleClass  = "mobile-menu-toggle"
	SidebarClass = "sidebar"
	OverlayClass = "sidebar-overlay"
	OpenClass    = "open"
)
