package disclosure

import (
	"fmt"

	"github.com/wellsite-tools/fracfocus-mcp/internal/fluidcalc"
	"github.com/wellsite-tools/fracfocus-mcp/internal/pdf"
)

// LineReader produces the ordered line stream of a disclosure document
type LineReader interface {
	ReadLines(req pdf.ReadLinesRequest) (*pdf.ReadLinesResult, error)
}

// Service orchestrates the extraction pipeline: document lines, line
// merging, field extraction and the calculation engine. It holds no mutable
// state across invocations.
type Service struct {
	reader    LineReader
	search    *pdf.Search
	merger    *LineMerger
	extractor *FieldExtractor
}

// NewService creates a disclosure service with all pipeline components
func NewService(maxFileSize int64) *Service {
	return &Service{
		reader:    pdf.NewReader(maxFileSize),
		search:    pdf.NewSearch(maxFileSize),
		merger:    NewLineMerger(),
		extractor: NewFieldExtractor(),
	}
}

// Request/result types

// ExtractFileRequest represents a request to extract fields from one document
type ExtractFileRequest struct {
	Path string `json:"path"`
}

// ExtractFileResult carries the extracted fields and document stats
type ExtractFileResult struct {
	Path   string           `json:"path"`
	Fields *ExtractedFields `json:"fields"`
	Pages  int              `json:"pages"`
	Lines  int              `json:"lines"`
}

// ProcessFileRequest represents an extract-then-calculate request, with
// optional explicit overrides layered over the extracted values
type ProcessFileRequest struct {
	Path      string    `json:"path"`
	Overrides Overrides `json:"-"`
}

// ProcessFileResult carries the resolved inputs and the derived quantities
type ProcessFileResult struct {
	Path        string                      `json:"path"`
	Fields      *ExtractedFields            `json:"fields"`
	Input       fluidcalc.Input             `json:"input"`
	Result      *fluidcalc.Result           `json:"result"`
	MassBalance fluidcalc.MassBalanceStatus `json:"mass_balance"`
}

// BatchError records an extraction failure for one document in a batch
type BatchError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// BatchResult carries the ordered result rows plus the per-document errors
// for documents that failed extraction
type BatchResult struct {
	Rows   []*ProcessFileResult `json:"rows"`
	Errors []BatchError         `json:"errors"`
}

// Operations

// ExtractFile runs the extraction pipeline on a single document. An
// unreadable document is a fatal error here; there is nothing to calculate.
func (s *Service) ExtractFile(req ExtractFileRequest) (*ExtractFileResult, error) {
	readResult, err := s.reader.ReadLines(pdf.ReadLinesRequest{Path: req.Path})
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", req.Path, err)
	}

	merged := s.merger.Merge(readResult.Lines)
	fields := s.extractor.Extract(merged)

	return &ExtractFileResult{
		Path:   req.Path,
		Fields: fields,
		Pages:  readResult.Pages,
		Lines:  len(merged),
	}, nil
}

// ProcessFile extracts a document, layers any explicit overrides over the
// extracted values and runs the calculation engine on the resolved inputs.
func (s *Service) ProcessFile(req ProcessFileRequest) (*ProcessFileResult, error) {
	extractResult, err := s.ExtractFile(ExtractFileRequest{Path: req.Path})
	if err != nil {
		return nil, err
	}

	input := req.Overrides.Apply(extractResult.Fields.Input())
	result := fluidcalc.Calculate(input)

	return &ProcessFileResult{
		Path:        req.Path,
		Fields:      extractResult.Fields,
		Input:       input,
		Result:      result,
		MassBalance: fluidcalc.CheckMassBalance(result.TotalMassPercent),
	}, nil
}

// ProcessFiles processes documents sequentially in the given order. A
// failure on one document is recorded against that document and does not
// abort the remaining batch; row order follows input order.
func (s *Service) ProcessFiles(paths []string) *BatchResult {
	batch := &BatchResult{
		Rows:   make([]*ProcessFileResult, 0, len(paths)),
		Errors: []BatchError{},
	}

	for _, path := range paths {
		row, err := s.ProcessFile(ProcessFileRequest{Path: path})
		if err != nil {
			batch.Errors = append(batch.Errors, BatchError{Path: path, Error: err.Error()})
			continue
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch
}

// ProcessDirectory discovers disclosure PDFs in a directory (name order)
// and processes them as a batch
func (s *Service) ProcessDirectory(directory string) (*BatchResult, error) {
	files, err := s.search.FindPDFsInDirectory(directory)
	if err != nil {
		return nil, fmt.Errorf("directory discovery failed: %w", err)
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.Path
	}

	return s.ProcessFiles(paths), nil
}

// SearchDirectory lists candidate disclosure PDFs in a directory
func (s *Service) SearchDirectory(req pdf.SearchDirectoryRequest) (*pdf.SearchDirectoryResult, error) {
	return s.search.SearchDirectory(req)
}
