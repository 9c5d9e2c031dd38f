package chunks

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner walks a directory tree and extracts every chunk file it selects.
type Scanner struct {
	includes []string
	excludes []string
	logger   *slog.Logger
}

// NewScanner creates a scanner. Patterns are doublestar globs matched
// against slash-separated paths relative to the scan root.
func NewScanner(includes, excludes []string, logger *slog.Logger) *Scanner {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		includes: includes,
		excludes: excludes,
		logger:   logger,
	}
}

// Scan returns the chunks under root in lexical path order. Chunk paths are
// relative to root.
func (s *Scanner) Scan(root string) ([]Chunk, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var chunks []Chunk
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && s.shouldExclude(relPath+"/") {
				s.logger.Debug("skipping directory", "path", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if !s.shouldInclude(relPath) || s.shouldExclude(relPath) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		chunk := Extract(relPath, string(source))
		chunk.ModTime = info.ModTime()
		if chunk.Definition == nil {
			s.logger.Warn("chunk has no function definition", "path", relPath, "error", chunk.Err)
		} else {
			s.logger.Debug("extracted chunk",
				"path", relPath,
				"definition", chunk.Definition.String(),
				"prototypes", len(chunk.Prototypes))
		}
		chunks = append(chunks, chunk)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

func (s *Scanner) shouldInclude(path string) bool {
	for _, pattern := range s.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (s *Scanner) shouldExclude(path string) bool {
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
