// Package model defines the typed form model consumed by renderers. Extractors
// reside in internal/model but return the types defined here. A FormModel is
// an ordered list of SmartField entries: each one carries the canonical field
// identifier, a display label, an inferred input type, a placeholder, and the
// card side the field was discovered on. Renderers group fields by side and
// rely on slice order for layout and tab order, so extraction order is part of
// the contract.
package model
