// Package schemas embeds the JSON Schema documents shipped with the tool.
package schemas

import _ "embed"

// ResultsSchemaJSON is the JSON Schema for a SimBench results file. The
// schema is deliberately permissive: every field is optional and most accept
// the degraded shapes the loader tolerates, so validation flags genuinely
// malformed files rather than minor contract drift.
//
//go:embed results.schema.json
var ResultsSchemaJSON string
