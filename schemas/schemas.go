// Package schemas embeds the JSON schemas used to validate configuration
// files.
package schemas

import _ "embed"

// ConfigSchemaJSON is the schema for .assistant.yaml.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
