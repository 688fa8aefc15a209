package upload

// UploadResponse HTTP response model
type UploadResponse struct {
	URL string `json:"url"`
}

// расширение по типу содержимого
var allowedTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}
