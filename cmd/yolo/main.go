package main

import (
	"yolo-transcript/cmd/yolo/cmd"
)

//go:generate swag init --dir ../.. --generalInfo cmd/yolo/main.go --output ../../docs --parseInternal

// @title Yolo Transcript API
// @version 1.0
// @description Audio transcription with per-minute credits, custom vocabularies and Google Drive sync.
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token as "Bearer <jwt>"
func main() {
	cmd.Execute()
}
