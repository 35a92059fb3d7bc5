package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"yolo-transcript/internal/app/model"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []string{
	"ID",
	"Created At",
	"File Name",
	"Status",
	"Duration (s)",
	"Credits",
	"Quality Score",
	"Reviewed",
	"Transcription",
	"Error Message",
}

// NewWorkbook builds a single-sheet workbook of transcriptions
func NewWorkbook(transcriptions []model.Transcription) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, title := range header {
		cell := headerRow.AddCell()
		cell.Value = title
		cell.GetStyle().Font.Bold = true
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = t.ID
		row.AddCell().Value = t.CreatedAt.UTC().Format(time.RFC3339)
		row.AddCell().Value = t.FileName
		row.AddCell().Value = string(t.Status)
		row.AddCell().SetFloatWithFormat(t.Duration, "0.00")
		row.AddCell().SetInt(t.CreditsCharged)
		quality := row.AddCell()
		if t.QualityScore != nil {
			quality.SetFloatWithFormat(*t.QualityScore, "0.00")
		}
		row.AddCell().SetBool(t.Reviewed)
		row.AddCell().Value = t.TranscriptionText
		row.AddCell().Value = t.ErrorMessage
	}
	return file, nil
}

// WriteXLSX streams the workbook to w
func WriteXLSX(transcriptions []model.Transcription, w io.Writer) error {
	file, err := NewWorkbook(transcriptions)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook to path
func SaveXLSX(transcriptions []model.Transcription, path string) error {
	file, err := NewWorkbook(transcriptions)
	if err != nil {
		return err
	}
	if err := file.Save(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
