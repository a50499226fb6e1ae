// Package static embeds the API reference page and its OpenAPI document.
package static

import "embed"

//go:embed openapi.html openapi.json
var FS embed.FS
