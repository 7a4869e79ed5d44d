// Package app contains the application built on top of the argument
// registry. It defines the App struct, its configuration, and the run
// lifecycle, decoupled from any specific entrypoint like a CLI.
package app
