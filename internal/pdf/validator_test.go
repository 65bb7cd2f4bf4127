package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidator_ValidateFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "pdf_validator_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	emptyPDFPath := filepath.Join(tempDir, "empty.pdf")
	fakePDFPath := filepath.Join(tempDir, "fake.pdf")
	txtPath := filepath.Join(tempDir, "notes.txt")
	largePDFPath := filepath.Join(tempDir, "large.pdf")

	if err := os.WriteFile(emptyPDFPath, []byte{}, 0o644); err != nil {
		t.Fatalf("Failed to create empty file: %v", err)
	}
	if err := os.WriteFile(fakePDFPath, []byte("plain text pretending"), 0o644); err != nil {
		t.Fatalf("Failed to create fake PDF file: %v", err)
	}
	if err := os.WriteFile(txtPath, []byte("hello"), 0o644); err != nil {
		t.Fatalf("Failed to create txt file: %v", err)
	}
	largeContent := make([]byte, 2048+1)
	if err := os.WriteFile(largePDFPath, largeContent, 0o644); err != nil {
		t.Fatalf("Failed to create large file: %v", err)
	}

	validator := NewValidator(2048)

	tests := []struct {
		name      string
		path      string
		wantValid bool
		wantMsg   string
	}{
		{
			name:      "empty path",
			path:      "",
			wantValid: false,
			wantMsg:   "path cannot be empty",
		},
		{
			name:      "non-existent file",
			path:      filepath.Join(tempDir, "missing.pdf"),
			wantValid: false,
			wantMsg:   "file does not exist",
		},
		{
			name:      "directory instead of file",
			path:      tempDir,
			wantValid: false,
			wantMsg:   "path is a directory",
		},
		{
			name:      "wrong extension",
			path:      txtPath,
			wantValid: false,
			wantMsg:   "file is not a PDF",
		},
		{
			name:      "empty file",
			path:      emptyPDFPath,
			wantValid: false,
			wantMsg:   "file is empty",
		},
		{
			name:      "file too large",
			path:      largePDFPath,
			wantValid: false,
			wantMsg:   "file too large",
		},
		{
			name:      "not a real PDF",
			path:      fakePDFPath,
			wantValid: false,
			wantMsg:   "invalid PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ValidateFile(ValidateFileRequest{Path: tt.path})
			if err != nil {
				t.Fatalf("ValidateFile() unexpected error = %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Errorf("ValidateFile() valid = %v, want %v (message: %s)",
					result.Valid, tt.wantValid, result.Message)
			}
			if tt.wantMsg != "" && !strings.Contains(result.Message, tt.wantMsg) {
				t.Errorf("ValidateFile() message = %q, want containing %q", result.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidator_IsValidPDF(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "pdf_validator_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	fakePDFPath := filepath.Join(tempDir, "fake.pdf")
	if err := os.WriteFile(fakePDFPath, []byte("junk"), 0o644); err != nil {
		t.Fatalf("Failed to create fake PDF file: %v", err)
	}

	validator := NewValidator(1024 * 1024)

	if validator.IsValidPDF(fakePDFPath) {
		t.Error("IsValidPDF() = true for junk content, want false")
	}
	if validator.IsValidPDF(filepath.Join(tempDir, "missing.pdf")) {
		t.Error("IsValidPDF() = true for missing file, want false")
	}
}

func TestValidator_ValidateFileInfo(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "pdf_validator_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, "ok.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	info, err := os.Stat(pdfPath)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}

	validator := NewValidator(1024)
	if err := validator.ValidateFileInfo(pdfPath, info); err != nil {
		t.Errorf("ValidateFileInfo() unexpected error = %v", err)
	}

	dirInfo, err := os.Stat(tempDir)
	if err != nil {
		t.Fatalf("Failed to stat dir: %v", err)
	}
	if err := validator.ValidateFileInfo(tempDir, dirInfo); err == nil {
		t.Error("ValidateFileInfo() expected error for directory")
	}
}
