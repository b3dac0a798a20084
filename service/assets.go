package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"
)

// ObjectStore is the slice of the S3 client the uploader needs
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
}

// Asset is one staged file selection waiting to be pushed to object
// storage before the record save
type Asset struct {
	// Kind names the asset in error messages ("audio", "image",
	// "video", "thumbnail") and keys the returned URL map
	Kind    string
	Subpath string
	File    *multipart.FileHeader
}

// AssetKey builds the object key for an upload. Millisecond timestamps
// make collisions unlikely; two same-named files uploaded within the
// same millisecond overwrite each other
func AssetKey(subpath, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", subpath, now.UnixMilli(), filename)
}

// UploadAssets uploads the staged files strictly in the order given.
// The first failure aborts the whole batch so the caller never writes
// a half-updated record. Returned URLs are keyed by asset kind
func UploadAssets(ctx context.Context, store ObjectStore, assets []Asset) (map[string]string, error) {
	urls := map[string]string{}

	for _, a := range assets {
		if a.File == nil {
			continue
		}

		f, err := a.File.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s file, %w", a.Kind, err)
		}

		key := AssetKey(a.Subpath, a.File.Filename, time.Now())
		url, err := store.Upload(ctx, key, a.File.Header.Get("Content-Type"), a.File.Size, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s file, %w", a.Kind, err)
		}

		urls[a.Kind] = url
	}

	return urls, nil
}
