// Package validators checks user provided input before it touches
// storage
package validators

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrNoFile              = errors.New("no file provided")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
	ErrNotCSV              = errors.New("file is not a CSV")
)

// UploadValidator checks a staged media file against the expected MIME
// prefix ("audio/", "image/", "video/"). Headers are checked first
// which is easy to spoof, but faster for legit clients, then the
// actual bytes are sniffed
func UploadValidator(fh *multipart.FileHeader, prefix string) (int, error) {
	if fh == nil {
		return http.StatusBadRequest, ErrNoFile
	}

	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, prefix) {
		return http.StatusBadRequest, ErrFileTypeUnsupported
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, err
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return http.StatusInternalServerError, err
	}

	if !strings.HasPrefix(mime.String(), prefix) {
		return http.StatusBadRequest, ErrFileTypeUnsupported
	}

	return 0, nil
}

// CSVValidator rejects anything that doesn't declare itself as CSV.
// No write happens for a rejected file
func CSVValidator(fh *multipart.FileHeader) (int, error) {
	if fh == nil {
		return http.StatusBadRequest, ErrNoFile
	}

	ct := fh.Header.Get("Content-Type")
	if !strings.Contains(ct, "csv") {
		return http.StatusBadRequest, ErrNotCSV
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, ErrFileTooLarge
	}

	return 0, nil
}
