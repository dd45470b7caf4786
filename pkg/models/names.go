package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FolderName returns the project name reduced to characters that are safe in
// a directory or archive entry name: letters, digits, '_', '-' and '.'.
func (p ProjectInfo) FolderName() string {
	var b strings.Builder
	for _, r := range norm.NFC.String(p.Name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || name == "." || name == ".." {
		return "AndroidApp"
	}
	return name
}

// ThemeName returns the identifier used for the XML style, the Compose theme
// function and the application class. Only ASCII letters and digits survive,
// and a leading digit is prefixed with "App".
func (p ProjectInfo) ThemeName() string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(p.Name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return "App"
	}
	if unicode.IsDigit(rune(name[0])) {
		return "App" + name
	}
	return name
}

// PackagePath converts the package name into a slash-separated directory path.
func (p ProjectInfo) PackagePath() string {
	return strings.ReplaceAll(p.Package, ".", "/")
}
