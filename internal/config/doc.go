// Package config holds the fixed settings of sitekit.
//
// Deploy behaviour has no configuration surface: the commit message is a
// constant and the remote and branch are whatever git has configured.
// The only tunables are environment variables for logging.
package config
