package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/testutil"
)

func sampleRows() []model.Transcription {
	processing := testutil.NewTranscription("t-processing")
	completed := testutil.NewCompletedTranscription("t-completed")
	completed.Reviewed = true
	return []model.Transcription{*completed, *processing}
}

func TestNewWorkbook(t *testing.T) {
	file, err := NewWorkbook(sampleRows())
	require.NoError(t, err)

	sheet := file.Sheet["Transcriptions"]
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Len(t, sheet.Rows[0].Cells, len(header))

	completed := sheet.Rows[1]
	assert.Equal(t, "t-completed", completed.Cells[0].Value)
	assert.Equal(t, "completed", completed.Cells[3].Value)
	assert.Equal(t, "Good morning everyone, let's go around the room.", completed.Cells[8].Value)

	processing := sheet.Rows[2]
	assert.Equal(t, "processing", processing.Cells[3].Value)
	assert.Equal(t, "", processing.Cells[6].Value, "missing quality score stays blank")
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(sampleRows(), &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Len(t, file.Sheets[0].Rows, 3)
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, SaveXLSX(nil, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
