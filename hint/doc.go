// Package hint provides the CPU spin-wait hint of the active backend.
package hint
