package pdf

// FileInfo represents information about a disclosure PDF file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// ReadLinesRequest represents a request to read a disclosure PDF as text lines
type ReadLinesRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest represents a request to validate a disclosure PDF
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest represents a request to search for disclosure PDFs in a directory
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// ReadLinesResult represents the ordered line stream extracted from a PDF.
// Lines are trimmed and blank lines are dropped; page order is preserved
// but page boundaries carry no meaning downstream.
type ReadLinesResult struct {
	Path  string   `json:"path"`
	Lines []string `json:"lines"`
	Pages int      `json:"pages"`
	Size  int64    `json:"size"`
}

// ValidateFileResult represents the result of a PDF validation operation
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// SearchDirectoryResult represents the result of a directory search operation
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
