// Package archwiki provides a command-line reader for the Arch Linux wiki.
// It fetches wiki pages, converts their rendered body to plain text,
// markdown or html, caches the converted pages on disk, and keeps a local
// catalogue of page titles for offline listing and suggestions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, strutil/).
package archwiki
