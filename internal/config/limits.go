package config

const (
	// MaxTitleLength is the maximum length for document titles.
	// Limited to 200 to fit in PostgreSQL VARCHAR(200).
	MaxTitleLength = 200

	// MaxCategoryLength is the maximum length for category labels.
	MaxCategoryLength = 50

	// MaxOriginalNameLength is the maximum length for uploaded filenames.
	MaxOriginalNameLength = 255

	// MaxUploadBytes is the maximum accepted upload size (50 MB).
	MaxUploadBytes = 50 * 1024 * 1024
)

// AllowedExtensions is the upload allow-list, keyed by lowercase
// extension without the dot.
var AllowedExtensions = map[string]bool{
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"mp4":  true,
	"docx": true,
	"xlsx": true,
	"txt":  true,
}
