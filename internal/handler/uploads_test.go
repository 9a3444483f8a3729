// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olegiv/portfolio-go/internal/service"
)

// uploadSetup builds a handler with a real upload service writing to a
// temp directory.
func uploadSetup(t *testing.T) (*Handler, string) {
	t.Helper()
	db := testDB(t)
	dir := t.TempDir()
	h := NewHandler(db, nil, service.NewUploadService(db, dir), nil)
	return h, dir
}

func newUploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	h, dir := uploadSetup(t)

	req := newUploadRequest(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	w := executeHandler(t, h.UploadFile, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("UploadFile() status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	upload := unmarshalData[UploadResponse](t, w)
	if upload.OriginalName != "resume.pdf" {
		t.Errorf("OriginalName = %q, want %q", upload.OriginalName, "resume.pdf")
	}
	if upload.URL != "/uploads/"+upload.Filename {
		t.Errorf("URL = %q, want /uploads/%s", upload.URL, upload.Filename)
	}
	if _, err := os.Stat(filepath.Join(dir, upload.Filename)); err != nil {
		t.Errorf("uploaded file not on disk: %v", err)
	}
}

func TestUploadFileRejectsDisallowedType(t *testing.T) {
	h, _ := uploadSetup(t)

	req := newUploadRequest(t, "evil.exe", "application/x-msdownload", []byte("MZ"))
	w := executeHandler(t, h.UploadFile, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("UploadFile() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUploadFileMissingField(t *testing.T) {
	h, _ := uploadSetup(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("other", "value")
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := executeHandler(t, h.UploadFile, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("UploadFile() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDeleteUploadIsIdempotent(t *testing.T) {
	h, _ := uploadSetup(t)

	req := newUploadRequest(t, "photo.gif", "image/gif", gifBytes())
	w := executeHandler(t, h.UploadFile, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("UploadFile() status = %d, want %d", w.Code, http.StatusCreated)
	}

	for i := 0; i < 2; i++ {
		deleteW := executeHandler(t, h.DeleteUpload,
			newDeleteRequest(t, "/api/admin/uploads/1", map[string]string{"id": "1"}))
		if deleteW.Code != http.StatusNoContent {
			t.Fatalf("DeleteUpload() attempt %d status = %d, want %d", i+1, deleteW.Code, http.StatusNoContent)
		}
	}
}

// gifBytes returns a minimal valid 1x1 GIF.
func gifBytes() []byte {
	return []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61, // GIF89a
		0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x00, 0xff, 0xff, 0xff,
		0x21, 0xf9, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
		0x02, 0x02, 0x44, 0x01, 0x00,
		0x3b,
	}
}

func TestUploadFileStorageFailureIsInternal(t *testing.T) {
	db := testDB(t)
	// Point the service at a path occupied by a regular file so the
	// uploads directory cannot be created.
	blocked := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocked, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}
	h := NewHandler(db, nil, service.NewUploadService(db, blocked), nil)

	req := newUploadRequest(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	w := executeHandler(t, h.UploadFile, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("UploadFile() status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	// Internal paths must not leak into the response body
	if detail := unmarshalError(t, w); strings.Contains(detail.Message, blocked) {
		t.Errorf("error message leaks storage path: %q", detail.Message)
	}
}
