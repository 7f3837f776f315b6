// Package template models designer-authored card template documents: where
// they come from (file, fs.FS, HTTP), the raw document wrapper, and the
// tolerant scene decode that turns an opaque canvas export into front/back
// object lists the extractor can walk.
package template
