package templates

import "strings"

// DeriveHeader turns a component name into display text by replacing every
// underscore with a space.
func DeriveHeader(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// DeriveReferencePath joins folder and name into the default markdown
// reference path: slashes normalized, surrounding separators stripped.
func DeriveReferencePath(folder, name string) string {
	f := strings.Trim(toSlash(folder), "/")
	if f == "" {
		return name + ".md"
	}
	return f + "/" + name + ".md"
}

// NormalizeReferenceOverride strips the leading separators of an explicit
// reference path.
func NormalizeReferenceOverride(ref string) string {
	return strings.TrimLeft(toSlash(strings.TrimSpace(ref)), "/")
}

// NormalizeImportPath converts an import base path to forward slashes
// without leading or trailing separators.
func NormalizeImportPath(p string) string {
	return strings.Trim(toSlash(p), "/")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
