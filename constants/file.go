package constants

import "strings"

// MaxUploadBytes caps a single uploaded document.
const MaxUploadBytes = 10 << 20 // 10MB

// AllowedMIMETypes holds the accepted content types for document uploads,
// keyed by sniffed MIME type.
var AllowedMIMETypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

// AllowedExtensions holds the accepted file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// ImportExtensions holds the accepted extensions for bulk-import files.
var ImportExtensions = map[string]struct{}{
	"xlsx": {},
	"csv":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
