// File: internal/services/storage/storage.go

package storage

import (
    "errors"
    "fmt"
    "io"
    "log"
    "os"
    "path/filepath"

    "github.com/google/uuid"
)

// MaxAudioSize is the upload ceiling for a single audio clip.
const MaxAudioSize = 10 * 1024 * 1024 // 10 MiB

const defaultExtension = ".wav"

var ErrFileTooLarge = errors.New("file size exceeds 10MB limit")

// AudioStorageService persists uploaded audio clips to a local directory and
// derives the public URLs they are served under.
type AudioStorageService struct {
    dir       string
    urlPrefix string
    maxSize   int64
}

func NewAudioStorageService(dir, urlPrefix string) (*AudioStorageService, error) {
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, fmt.Errorf("failed to create audio directory %s: %w", dir, err)
    }
    return &AudioStorageService{
        dir:       dir,
        urlPrefix: urlPrefix,
        maxSize:   MaxAudioSize,
    }, nil
}

// Save writes the upload to disk under a fresh UUID-based name, preserving
// the original extension (.wav when none is present), and returns the stored
// filename. The size ceiling is enforced only after the full file has been
// written: an oversized upload is always fully received, then deleted.
func (s *AudioStorageService) Save(src io.Reader, originalFilename string) (string, error) {
    ext := filepath.Ext(originalFilename)
    if ext == "" {
        ext = defaultExtension
    }
    filename := uuid.New().String() + ext
    path := filepath.Join(s.dir, filename)

    dst, err := os.Create(path)
    if err != nil {
        log.Printf("[AudioStorage] Failed to create file %s: %v", path, err)
        return "", fmt.Errorf("failed to save file: %w", err)
    }

    _, copyErr := io.Copy(dst, src)
    closeErr := dst.Close()
    if copyErr != nil || closeErr != nil {
        s.Remove(filename)
        log.Printf("[AudioStorage] Failed to write file %s: copy=%v close=%v", path, copyErr, closeErr)
        return "", errors.New("failed to save file")
    }

    info, err := os.Stat(path)
    if err != nil {
        s.Remove(filename)
        return "", fmt.Errorf("failed to stat saved file: %w", err)
    }
    if info.Size() > s.maxSize {
        s.Remove(filename)
        return "", ErrFileTooLarge
    }

    return filename, nil
}

// Remove deletes a previously saved file. Best effort: a failed removal is
// logged, not propagated, since it only leaves an orphaned file behind.
func (s *AudioStorageService) Remove(filename string) {
    path := filepath.Join(s.dir, filename)
    if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
        log.Printf("[AudioStorage] Failed to remove file %s: %v", path, err)
    }
}

// PublicURL maps a stored filename to the path it is served under.
func (s *AudioStorageService) PublicURL(filename string) string {
    return s.urlPrefix + "/" + filename
}

// Dir returns the storage directory, for wiring the static file server.
func (s *AudioStorageService) Dir() string {
    return s.dir
}
