package output

// GenerateOutput is the JSON output of the generate command.
type GenerateOutput struct {
	LogicalName   string   `json:"logicalName"`
	PhysicalName  string   `json:"physicalName"`
	TokenMappings []string `json:"tokenMappings"`
	Tokenizer     string   `json:"tokenizer"`
	Naming        string   `json:"naming"`
	Fallback      bool     `json:"fallback"`
}

// BatchOutput is the JSON output of the batch command.
type BatchOutput struct {
	RunID   string           `json:"runId"`
	Results []GenerateOutput `json:"results"`
	Summary BatchSummary     `json:"summary"`
}

// BatchSummary summarises a batch run.
type BatchSummary struct {
	Total     int    `json:"total"`
	Unknown   int    `json:"unknown"`
	ElapsedMS int64  `json:"elapsedMs"`
	Workers   int    `json:"workers"`
	Source    string `json:"source,omitempty"`
}

// DictOutput is the JSON output of the dict command.
type DictOutput struct {
	Path    string       `json:"path,omitempty"`
	Format  string       `json:"format,omitempty"`
	Size    int          `json:"size"`
	Known   int          `json:"known"`
	MaxLen  int          `json:"maxWordLength"`
	Entries []DictEntry  `json:"entries,omitempty"`
	Lookups []DictLookup `json:"lookups,omitempty"`
}

// DictEntry is one dictionary word with its elements.
type DictEntry struct {
	Word     string   `json:"word"`
	Elements []string `json:"elements"`
}

// DictLookup is the result of looking a word up.
type DictLookup struct {
	Word     string   `json:"word"`
	Found    bool     `json:"found"`
	Elements []string `json:"elements"`
}

// VersionOutput is the JSON output of the version command.
type VersionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"`
}
