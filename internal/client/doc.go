// Package client implements the interactive client application runtime.
//
// It wires the local store, services, the remote catalog adapter, the
// cache janitor, and the terminal UI flows into a single process
// lifecycle.
package client
