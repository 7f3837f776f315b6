// Package orchestrator wires the full pipeline from template document to
// rendered form: loader, scene decode, smart field extraction, decorators,
// and the renderer registry. Every stage can be swapped through options; the
// zero-configuration path loads files from disk and renders vanilla HTML.
package orchestrator
