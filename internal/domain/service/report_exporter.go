package service

import (
	"io"

	"loyalty/internal/domain/entity"
)

// ActivationExporter writes activation listings as a spreadsheet.
type ActivationExporter interface {
	WriteActivations(w io.Writer, records []*entity.ActivationRecord) error
	ContentType() string
	FileExtension() string
}
