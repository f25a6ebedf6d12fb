// Package docai calls the external document-understanding service and
// returns its raw JSON text. All network mechanics live here, behind the
// Extractor interface; the normalization core only ever sees the returned
// payload text.
package docai

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"finsight/internal/finerror"
	"finsight/internal/normalizer"
)

// MaxDocumentBytes is the upload size cap enforced before any network call.
const MaxDocumentBytes = 4 * 1024 * 1024

// SupportedMimeTypes lists the document formats the service accepts.
var SupportedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"image/heif",
	"application/pdf",
}

// Document is the raw uploaded file content plus its MIME type.
type Document struct {
	Data     []byte
	MimeType string
}

// Extractor sends a document to the AI service and returns the raw JSON text
// of its response. Implementations own cancellation and timeout policy for
// the external call.
type Extractor interface {
	Extract(ctx context.Context, doc Document, source normalizer.Source) (string, error)
}

// ValidateDocument checks size and MIME type before a document is sent out.
func ValidateDocument(doc Document) error {
	if len(doc.Data) == 0 {
		return &finerror.UnsupportedInputError{Reason: "document is empty"}
	}
	if len(doc.Data) > MaxDocumentBytes {
		return &finerror.UnsupportedInputError{
			Reason: fmt.Sprintf("document too large: %d bytes (maximum %d)", len(doc.Data), MaxDocumentBytes),
		}
	}
	for _, mime := range SupportedMimeTypes {
		if doc.MimeType == mime {
			return nil
		}
	}
	return &finerror.UnsupportedInputError{
		Reason: fmt.Sprintf("unsupported file type: %s", doc.MimeType),
	}
}

// MimeTypeForFile guesses the MIME type from a file name's extension.
// Unknown extensions return an empty string.
func MimeTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	case ".pdf":
		return "application/pdf"
	default:
		return ""
	}
}
