// Command subcheck cross-references subtitle scripts across episode folders.
//
// It scans Advanced SubStation Alpha files for explicit reference tags and
// keyword references, resolves each against the referenced episode's script,
// classifies how faithfully the lines match, and renders a report. A
// glossary subcommand flags near-miss spellings of established terminology.
package main
