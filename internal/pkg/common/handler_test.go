package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"food_delivery_api/internal/pkg/uploader"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeUploader 按文件名返回 URL，指定文件名时返回错误
type fakeUploader struct {
	failOn string
}

func (u *fakeUploader) UploadFile(file *multipart.FileHeader) (string, error) {
	if u.failOn != "" && file.Filename == u.failOn {
		return "", errors.New("oss unavailable")
	}
	return "https://cdn.example.com/" + file.Filename, nil
}

func newUploadRequest(t *testing.T, filenames []string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		assert.NoError(t, err)
		_, err = part.Write([]byte("content of " + name))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func performUpload(req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", UploadFile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadFile(t *testing.T) {
	t.Run("batch upload keeps file order", func(t *testing.T) {
		uploader.GlobalUploader = &fakeUploader{}
		defer func() { uploader.GlobalUploader = nil }()

		names := []string{"a.png", "b.png", "c.png", "d.png", "e.png", "f.png"}
		w := performUpload(newUploadRequest(t, names))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool     `json:"success"`
			Data    []string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Data, len(names))
		for i, name := range names {
			assert.Equal(t, "https://cdn.example.com/"+name, resp.Data[i])
		}
	})

	t.Run("single failure fails the batch", func(t *testing.T) {
		uploader.GlobalUploader = &fakeUploader{failOn: "b.png"}
		defer func() { uploader.GlobalUploader = nil }()

		w := performUpload(newUploadRequest(t, []string{"a.png", "b.png", "c.png"}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no files rejected", func(t *testing.T) {
		uploader.GlobalUploader = &fakeUploader{}
		defer func() { uploader.GlobalUploader = nil }()

		w := performUpload(newUploadRequest(t, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
