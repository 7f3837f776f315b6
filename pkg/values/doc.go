// Package values manages the record of user-entered values for a generated
// form. A Record mirrors the field list one-to-one: text-like fields default
// to the empty string, file fields to a nil attachment. Updates are pure
// merges keyed by field identifier, and a change in the field list resets the
// record wholesale rather than patching it.
package values
