// Package output provides console and file logging for sitekit commands.
//
// Console output is plain messages without timestamps; when a log file is
// configured every message is also written there with timestamps and
// rotated by size.
package output
