// Package schemas embeds the JSON Schema files that describe persisted artifacts.
package schemas

import _ "embed"

// ResumeFile is the schema file name, relative to this directory
const ResumeFile = "resume.schema.json"

// Resume is the JSON Schema for a persisted resume document
//
//go:embed resume.schema.json
var Resume string
