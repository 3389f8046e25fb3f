package upload

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowedExtensions whitelists image uploads by extension.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Saver writes uploaded images into a single directory and hands back
// FileSets whose lifetime is scoped to one request.
type Saver struct {
	dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// FileSet tracks files written for one request. Cleanup removes them unless
// Commit ran first, so a single deferred call covers every failure path.
type FileSet struct {
	dir       string
	names     []string
	committed bool
}

// Filenames returns the stored bare filenames, nil when nothing was uploaded.
func (fs *FileSet) Filenames() []string {
	return fs.names
}

// Commit marks the files as owned by a durably saved document.
func (fs *FileSet) Commit() {
	fs.committed = true
}

// Cleanup deletes the files unless committed. Safe to defer unconditionally.
func (fs *FileSet) Cleanup() {
	if fs.committed {
		return
	}
	removeAll(fs.dir, fs.names)
	fs.names = nil
}

// Save stores up to max files from the named multipart field, rejecting
// anything without a whitelisted image extension and image content type.
// An empty field yields an empty FileSet, not an error.
func (s *Saver) Save(c *gin.Context, field string, max int) (*FileSet, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not a multipart request: treat as no uploads.
		return &FileSet{dir: s.dir}, nil
	}

	files := form.File[field]
	if len(files) > max {
		return &FileSet{dir: s.dir}, fmt.Errorf("too many files: at most %d allowed for %q", max, field)
	}

	fs := &FileSet{dir: s.dir}
	for _, header := range files {
		name, err := s.saveOne(c, header)
		if err != nil {
			fs.Cleanup()
			return &FileSet{dir: s.dir}, err
		}
		fs.names = append(fs.names, name)
	}
	return fs, nil
}

// SaveOne stores a single file from the named field, returning "" when the
// field is absent.
func (s *Saver) SaveOne(c *gin.Context, field string) (string, *FileSet, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", &FileSet{dir: s.dir}, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return "", &FileSet{dir: s.dir}, nil
	}

	name, err := s.saveOne(c, files[0])
	if err != nil {
		return "", &FileSet{dir: s.dir}, err
	}
	return name, &FileSet{dir: s.dir, names: []string{name}}, nil
}

func (s *Saver) saveOne(c *gin.Context, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("only image files are allowed, got %q", header.Filename)
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("only image files are allowed, got content type %q", ct)
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(header, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return name, nil
}

// Remove deletes previously stored files, typically the replaced images of an
// updated document. Failures are logged, never propagated: a leftover file is
// preferable to failing a request whose document write already succeeded.
func (s *Saver) Remove(filenames []string) {
	removeAll(s.dir, filenames)
}

func removeAll(dir string, filenames []string) {
	for _, name := range filenames {
		// Stored names are bare identifiers; refuse anything path-like.
		if name == "" || name != filepath.Base(name) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			log.Printf("upload: failed to remove %s: %v", name, err)
		}
	}
}
