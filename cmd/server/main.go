package main

import (
	"os"

	"study-buddy/backend/internal/app"
)

// @title           Study Buddy API
// @version         1.0
// @description     AI tutor backend: streamed chat, generated study artifacts, transcription and notes.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	os.Exit(app.Run())
}
