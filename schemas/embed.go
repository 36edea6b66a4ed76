// Package schemas holds the JSON Schemas for recipe-finder request bodies and catalog files.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
