// Package templates is the template dispatcher: it maps an output kind (page,
// nav, stub) plus named parameters to generated file content. Rendering is
// deterministic and free of side effects for the built-in templates; a
// Renderer may be pointed at a directory of <kind>.tmpl files that replace
// the built-ins.
package templates
