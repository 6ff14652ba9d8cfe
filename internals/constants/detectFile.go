package constants

import (
	"path/filepath"
	"strings"
)

const (
	AttachmentImage   = "image"
	AttachmentPDF     = "pdf"
	AttachmentUnknown = "unknown"
)

// DetectAttachmentType classifies an upload by extension. Images get
// normalized to webp before storage; PDFs are stored as-is.
func DetectAttachmentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
		return AttachmentImage
	case ".pdf":
		return AttachmentPDF
	default:
		return AttachmentUnknown
	}
}
