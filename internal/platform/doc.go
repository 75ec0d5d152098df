// Package platform holds filesystem helpers shared by the generators,
// chiefly atomic replacement of a generated file.
package platform
