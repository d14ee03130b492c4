// Package schemas embeds the JSON Schema documents for the job input and ranking output artifacts.
package schemas

import _ "embed"

// JobRecord is the schema for job record input files
//
//go:embed job_record.schema.json
var JobRecord string

// RankingResult is the schema for ranking output files
//
//go:embed ranking_result.schema.json
var RankingResult string
