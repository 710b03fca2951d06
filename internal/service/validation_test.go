package service

import (
	"errors"
	"testing"

	"docuvault/internal/domain"
)

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", "pdf"},
		{"PHOTO.JPG", "jpg"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"trailing.", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := fileExtension(tt.name); got != tt.want {
			t.Errorf("fileExtension(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestValidateUploadInputs(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		category     string
		originalName string
		wantErr      bool
	}{
		{"valid", "Report", "finance", "r.pdf", false},
		{"valid without category", "Report", "", "r.xlsx", false},
		{"empty title", "", "finance", "r.pdf", true},
		{"empty filename", "Report", "", "", true},
		{"exe blocked", "Report", "", "setup.exe", true},
		{"case-insensitive extension", "Report", "", "SCAN.PNG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUploadInputs(tt.title, tt.category, tt.originalName)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("err = %v, want validation failure", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
