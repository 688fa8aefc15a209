package upload

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
)

const sniffLen = 512

type Handler struct {
	store     FileStore
	publicURL string
	maxSize   int64
	logger    Logger
}

// NewHandler publicURL префикс ссылки на файл, например /uploads
func NewHandler(store FileStore, publicURL string, maxSize int64, logger Logger) *Handler {
	return &Handler{
		store:     store,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxSize:   maxSize,
		logger:    logger,
	}
}

// Handle POST /api/upload
// multipart поле file, только изображения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// запас на заголовки multipart
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+sniffLen*2)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("POST /upload - File too large: limit=%d", h.maxSize)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, handlers.Msg(r, i18n.FileTooLarge))
			return
		}
		h.logger.Warn("POST /upload - File is missing: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.FileRequired))
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		h.logger.Warn("POST /upload - File too large: size=%d, limit=%d", header.Size, h.maxSize)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, handlers.Msg(r, i18n.FileTooLarge))
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.logger.Error("POST /upload - Failed to read file: %v", err)
		handlers.RespondInternalError(w, r)
		return
	}
	head = head[:n]

	ext, ok := detectExt(head, header.Filename, header.Header.Get("Content-Type"))
	if !ok {
		h.logger.Warn("POST /upload - Unsupported file type: filename=%s", header.Filename)
		handlers.RespondError(w, http.StatusUnsupportedMediaType, handlers.Msg(r, i18n.UnsupportedFileType))
		return
	}

	name, err := h.store.Save(r.Context(), ext, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		h.logger.Error("POST /upload - Failed to store file: %v", err)
		handlers.RespondInternalError(w, r)
		return
	}

	h.logger.Info("POST /upload - File stored: name=%s, size=%d", name, header.Size)
	handlers.RespondJSON(w, http.StatusCreated, &UploadResponse{URL: h.publicURL + "/" + name})
}

// detectExt тип по содержимому; SVG это текст, его определяем по заявленному типу и расширению
func detectExt(head []byte, filename, declared string) (string, bool) {
	sniffed := http.DetectContentType(head)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	if ext, ok := allowedTypes[sniffed]; ok && sniffed != "image/svg+xml" {
		return ext, true
	}

	mediaType, _, _ := mime.ParseMediaType(declared)
	if mediaType == "image/svg+xml" && strings.EqualFold(filepath.Ext(filename), ".svg") &&
		bytes.Contains(bytes.ToLower(head), []byte("<svg")) {
		return ".svg", true
	}
	return "", false
}
