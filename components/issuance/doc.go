// Package issuance provides a small net/http component that serves the card
// data form for a template and accepts submissions. GET renders the dynamic
// form through the orchestrator pipeline; POST collects the submitted values
// into a record and hands it to the configured Sink, which owns the actual
// card issuance.
package issuance
