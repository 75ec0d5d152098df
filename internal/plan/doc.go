// Package plan handles parsing and validation of plan files. A plan lists
// generation requests in YAML so many pages, navs and stubs can be produced
// without the interactive wizard. Plans are validated against an embedded
// JSON schema before they are converted to scaffold requests.
package plan
