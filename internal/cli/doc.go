// Package cli defines the sitekit cobra commands.
package cli
