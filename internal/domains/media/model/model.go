package model

const (
	EntityName = "media"
	PathUpload = "/upload"

	AllowedMimetypes = "image/png image/jpg image/jpeg image/webp"
)

// Extensions maps the accepted content types to the extension of the stored object.
var Extensions = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// StoredObject is what the s3 driver answers for an upload.
type StoredObject struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
