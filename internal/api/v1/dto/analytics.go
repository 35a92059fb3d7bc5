package dto

// QualityQuery selects transcripts that need a human review
type QualityQuery struct {
	Threshold float64 `form:"threshold,default=0.8" binding:"gte=0,lte=1"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
}

// QualityResponse lists low-confidence transcripts
type QualityResponse struct {
	Threshold      float64                 `json:"threshold"`
	Transcriptions []TranscriptionResponse `json:"transcriptions"`
}

// UploadResponse describes stored media
type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	Storage     string `json:"storage"`
}
