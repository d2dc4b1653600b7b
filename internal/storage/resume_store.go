package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/logger"
)

var pdfSignature = []byte("%PDF")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ResumeStore persists resume uploads on the local filesystem. Records only
// ever reference files by generated filename; every disk access resolves that
// filename against the base directory and rejects anything that would escape it.
type ResumeStore struct {
	baseDir    string
	maxSize    int64
	allowedExt map[string]bool
}

// NewResumeStore creates the base directory if needed and returns a store
func NewResumeStore(baseDir string, maxSize int64, allowedExtensions []string) (*ResumeStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}

	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	return &ResumeStore{
		baseDir:    baseDir,
		maxSize:    maxSize,
		allowedExt: allowed,
	}, nil
}

// Save validates and persists an uploaded resume, returning the generated
// filename to store on the application record.
func (s *ResumeStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return "", apperrors.ErrInvalidUpload
	}
	if s.maxSize > 0 && fileHeader.Size > s.maxSize {
		return "", apperrors.ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !s.allowedExt[ext] {
		return "", apperrors.ErrInvalidFileType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Timestamp prefix keeps concurrent submissions collision-free. The
	// validated extension is appended separately so sanitization can never
	// strip it; the signature check and content type depend on it.
	stem := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), sanitizeFilename(stem), ext)

	dstPath := filepath.Join(s.baseDir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("Resume stored")
	return filename, nil
}

// Resolve maps a stored filename to its path inside the base directory.
// Anything carrying path separators or traversal segments is rejected.
func (s *ResumeStore) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) ||
		strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", apperrors.ErrInvalidUpload
	}
	return filepath.Join(s.baseDir, filename), nil
}

// Open resolves a stored filename, confirms the file exists and, for PDFs,
// verifies the leading file signature before handing back the path. A file
// that fails the signature check must never be served as valid.
func (s *ResumeStore) Open(filename string) (string, error) {
	path, err := s.Resolve(filename)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		if info.Size() < int64(len(pdfSignature)) {
			return "", apperrors.ErrCorruptArtifact
		}
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()

		header := make([]byte, len(pdfSignature))
		if _, err := io.ReadFull(f, header); err != nil {
			return "", apperrors.ErrCorruptArtifact
		}
		if !bytes.Equal(header, pdfSignature) {
			return "", apperrors.ErrCorruptArtifact
		}
	}

	return path, nil
}

// Delete removes a stored resume. Missing files are treated as already
// deleted.
func (s *ResumeStore) Delete(filename string) error {
	path, err := s.Resolve(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// ContentType returns the download content type for a stored filename
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// sanitizeFilename strips directories and anything outside a conservative
// character set from the stem of a caller-supplied name.
func sanitizeFilename(stem string) string {
	base := filepath.Base(filepath.ToSlash(stem))
	base = strings.ReplaceAll(base, "..", "")
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "resume"
	}
	return base
}
