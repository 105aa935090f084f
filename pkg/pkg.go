//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the rpnsheet module embedded at build
// time.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "rpnsheet"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Postfix spreadsheet evaluator"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

// String returns the author as "Name <Email>", or just the name when no
// email is known.
func (a AuthorInfo) String() string {
	if a.Email == "" {
		return a.Name
	}

	return a.Name + " <" + a.Email + ">"
}

// VersionInfo returns the text printed by the --version flag: the program
// name and version followed by each author on its own line.
func VersionInfo() string {
	var sb strings.Builder

	sb.WriteString(Name + " " + Version)

	for _, a := range Author {
		sb.WriteString("\n  " + a.String())
	}

	return sb.String()
}
