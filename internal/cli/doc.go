// Package cli is responsible for turning the process argument vector into an
// argument registry, validating the application's own flags, and handling
// process-level concerns like exit codes.
package cli
