// Package template defines renderer-agnostic template interfaces and
// adapters. Renderers depend on the TemplateRenderer seam instead of a
// concrete engine so the vanilla HTML output can be re-skinned without
// touching the extraction pipeline.
package template
