// Package schemas holds the JSON Schemas for synonym maps, match configuration and exported results.
package schemas

import "embed"

// Files holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	SynonymsFile     = "synonyms.schema.json"
	MatchConfigFile  = "match_config.schema.json"
	MatchResultsFile = "match_results.schema.json"
)

var (
	//go:embed synonyms.schema.json
	Synonyms string

	//go:embed match_config.schema.json
	MatchConfig string

	//go:embed match_results.schema.json
	MatchResults string
)
