package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader turns a disclosure PDF into an ordered stream of text lines
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a new PDF line reader with the specified constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ReadLines extracts the line stream from a PDF file. Pages that yield no
// text are skipped silently; a document that cannot be opened or yields no
// text at all is reported as unreadable.
func (r *Reader) ReadLines(req ReadLinesRequest) (*ReadLinesResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	// Check if file exists and get basic info
	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("document unreadable: %w", err)
	}
	defer f.Close()

	lines, err := r.extractLines(pdfReader)
	if err != nil {
		return nil, err
	}

	return &ReadLinesResult{
		Path:  req.Path,
		Lines: lines,
		Pages: pdfReader.NumPage(),
		Size:  fileInfo.Size(),
	}, nil
}

// validatePDFFile performs basic validation on a PDF file
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	// Check if it's a regular file (not a directory)
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	// Check file extension
	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	// Check file size
	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}

// extractLines concatenates each page's trimmed lines in page order
func (r *Reader) extractLines(pdfReader *pdf.Reader) ([]string, error) {
	if pdfReader == nil {
		return nil, fmt.Errorf("document unreadable: nil reader")
	}

	var lines []string
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// A page without a text layer is not an error
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			break
		}
		totalLength += len(content)

		for _, raw := range strings.Split(content, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("document unreadable: no text layer found")
	}

	return lines, nil
}
