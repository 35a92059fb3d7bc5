package dto

// ExportQuery selects the transcriptions written to a spreadsheet
type ExportQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=processing completed error"`
	Limit  int    `form:"limit,default=1000" binding:"min=1,max=10000"`
}
