package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehellodigital/job-khuiji/services"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	t.Run("missing file part", func(t *testing.T) {
		r, _, _, _ := setupRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "attachment", "a.png", []byte("x")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized file rejected before any storage call", func(t *testing.T) {
		r, _, _, _ := setupRouter(t)
		w := httptest.NewRecorder()
		big := make([]byte, services.MaxUploadSize+1)
		r.ServeHTTP(w, multipartRequest(t, "file", "big.png", big))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "10 MiB")
	})

	t.Run("storage unavailable answers 503", func(t *testing.T) {
		// No MinIO client is configured in unit tests, so a valid small
		// upload must stop at the storage gate.
		r, _, _, _ := setupRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "file", "small.png", []byte("png-bytes")))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
