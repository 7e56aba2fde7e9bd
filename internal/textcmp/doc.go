// Package textcmp normalizes and compares subtitle dialogue text.
//
// Comparison always happens on normalized text: forced line breaks (\N)
// become spaces, whitespace runs collapse to a single space, and the result
// is trimmed. The similarity ratio is a symmetric sequence-alignment score
// in [0,100]; classification maps a source/target pair to exact, similar,
// different, or not-found against a configurable threshold.
package textcmp
