package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"wordslurp/internal/server"
)

func main() {
	_ = godotenv.Load()

	port := getenv("PORT", "8080")
	uploadDir := getenv("UPLOAD_DIR", "./uploads")
	maxMB, err := strconv.Atoi(getenv("MAX_UPLOAD_MB", "16"))
	if err != nil || maxMB < 1 {
		logrus.Fatalf("MAX_UPLOAD_MB must be a positive integer")
	}

	srv, err := server.New(server.Config{
		UploadDir:      uploadDir,
		MaxUploadBytes: int64(maxMB) << 20,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Infof("wordslurpd listening on :%s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, srv.Router()))
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
