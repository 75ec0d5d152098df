// Package scaffold turns generation requests into files. It powers every
// pagegen command: each item is rendered through the template dispatcher,
// written atomically to <folder>/<name>.<ext>, and parsed afterwards so
// syntax problems in the generated source come back as warnings.
package scaffold
