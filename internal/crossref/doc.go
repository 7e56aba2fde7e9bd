// Package crossref resolves cross-episode dialogue references across a tree
// of numbered episode folders.
//
// A run walks the requested folders, extracts references from each subtitle
// event line (explicit tags or keyword patterns), locates the referenced
// dialogue in the target folder, classifies source against target text, and
// accumulates an ordered, immutable result list. Per-file and per-line
// failures are contained: a missing target folder or undecodable file
// surfaces as a not-found result, never as a run failure. Only a missing
// root path aborts the run.
package crossref
