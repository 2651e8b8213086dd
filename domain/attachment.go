package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// Attachment describes a file sent along with a message.
type Attachment struct {
	Name     string
	MimeType string
	Size     int64
}

// NewAttachment inspects the file at path and detects its content type.
func NewAttachment(path string) (Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, err
	}
	if info.IsDir() {
		return Attachment{}, fmt.Errorf("%s is a directory", path)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("detect content type of %s: %w", path, err)
	}
	return Attachment{
		Name:     filepath.Base(path),
		MimeType: mt.String(),
		Size:     info.Size(),
	}, nil
}
