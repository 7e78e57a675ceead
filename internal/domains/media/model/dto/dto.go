package dto

import (
	"encoding/json"
	"mime/multipart"
)

// MultipartUploadRequest is the form upload of POST /uploads.
type MultipartUploadRequest struct {
	File   *multipart.FileHeader `json:"file"   swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp"`
	Folder string                `json:"folder"                      validate:"omitempty,max=100"`
}

// Base64UploadRequest is the JSON alternative carrying the file as a data url.
type Base64UploadRequest struct {
	File     string `json:"file"     validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp"`
	Filename string `json:"filename" validate:"omitempty,max=255"`
	Folder   string `json:"folder"   validate:"omitempty,max=100"`
}

// UploadRequest is a decoded upload, whichever way it arrived.
type UploadRequest struct {
	Filename    string
	ContentType string
	Folder      string
	Data        []byte
}

type UploadResponse struct {
	StatusCode int             `json:"-"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}
