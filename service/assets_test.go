package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	key := AssetKey("music/audio", "song.mp3", now)

	assert.Equal(t, "music/audio/1700000000123_song.mp3", key)
}

func TestAssetKey_Format(t *testing.T) {
	key := AssetKey("videos/thumbnails", "thumb.png", time.Now())

	assert.Regexp(t, regexp.MustCompile(`^videos/thumbnails/\d+_thumb\.png$`), key)
}

type fakeObjectStore struct {
	keys []string
	fail string // key substring that triggers a failure
}

func (f *fakeObjectStore) Upload(_ context.Context, key, _ string, _ int64, body io.Reader) (string, error) {
	if f.fail != "" && regexp.MustCompile(f.fail).MatchString(key) {
		return "", errors.New("s3 unavailable")
	}

	io.Copy(io.Discard, body)
	f.keys = append(f.keys, key)
	return "https://bucket.example.com/" + key, nil
}

// makeFileHeader builds a real multipart.FileHeader the way gin would
// hand it to a handler
func makeFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestUploadAssets_OrderAndURLs(t *testing.T) {
	store := &fakeObjectStore{}
	audio := makeFileHeader(t, "audio", "song.mp3", []byte("audio-bytes"))
	image := makeFileHeader(t, "image", "cover.png", []byte("image-bytes"))

	urls, err := UploadAssets(context.Background(), store, []Asset{
		{Kind: "audio", Subpath: "music/audio", File: audio},
		{Kind: "image", Subpath: "music/images", File: image},
	})

	require.NoError(t, err)
	require.Len(t, store.keys, 2)
	assert.Contains(t, store.keys[0], "music/audio/")
	assert.Contains(t, store.keys[1], "music/images/")
	assert.Contains(t, urls["audio"], "song.mp3")
	assert.Contains(t, urls["image"], "cover.png")
}

func TestUploadAssets_FirstFailureAborts(t *testing.T) {
	store := &fakeObjectStore{fail: "music/audio"}
	audio := makeFileHeader(t, "audio", "song.mp3", []byte("audio-bytes"))
	image := makeFileHeader(t, "image", "cover.png", []byte("image-bytes"))

	_, err := UploadAssets(context.Background(), store, []Asset{
		{Kind: "audio", Subpath: "music/audio", File: audio},
		{Kind: "image", Subpath: "music/images", File: image},
	})

	require.Error(t, err)
	// The error names the failing asset kind
	assert.Contains(t, err.Error(), "audio")
	// And the image upload never started
	assert.Empty(t, store.keys)
}

func TestUploadAssets_SkipsNilSlots(t *testing.T) {
	store := &fakeObjectStore{}

	urls, err := UploadAssets(context.Background(), store, []Asset{
		{Kind: "video", Subpath: "videos", File: nil},
		{Kind: "thumbnail", Subpath: "videos/thumbnails", File: nil},
	})

	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.Empty(t, store.keys)
}
