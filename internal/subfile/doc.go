// Package subfile reads line-oriented subtitle (.ass) files.
//
// Files are decoded through an ordered encoding probe (UTF-8 with BOM,
// UTF-8, Latin-1, Windows-1252); a file readable under none of them yields
// an empty line sequence rather than an error. Event extraction isolates
// the Dialogue:/Comment: lines that follow the Format: declaration inside
// the [Events] section and exposes the display text after the final field
// separator.
package subfile
