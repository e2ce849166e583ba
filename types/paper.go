package types

// Paper represents one ingested research paper record.
// The record exists only after its backing file was durably written;
// category, tags and project assignment are filled in after ingestion.
type Paper struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	UserID    string `json:"user_id" bson:"user_id"`
	Title     string `json:"title" bson:"title"`
	Authors   string `json:"authors" bson:"authors"`
	FilePath  string `json:"file_path" bson:"file_path"`
	FileName  string `json:"file_name" bson:"file_name"`
	Summary   string `json:"summary,omitempty" bson:"summary,omitempty"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
	Tags      string `json:"tags,omitempty" bson:"tags,omitempty"`
	ProjectID string `json:"project_id,omitempty" bson:"project_id,omitempty"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
}

// MetadataResult carries the best-effort title/authors extraction outcome.
// Title and Authors always hold usable values ("Unknown" on fallback);
// Err reports why the model call failed, so callers can tell a genuine
// "Unknown" apart from a failed extraction.
type MetadataResult struct {
	Title   string
	Authors string
	Err     error
}

// SummaryResult carries the best-effort summary outcome. On failure Text
// holds the failure description that gets stored in place of a summary.
type SummaryResult struct {
	Text string
	Err  error
}
