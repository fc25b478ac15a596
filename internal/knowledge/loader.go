package knowledge

import (
	"os"
	"path/filepath"

	"sib-chatbot-be/internal/pkg/logger"
)

// DirLoader reads the knowledge base from a directory of plain-text files.
type DirLoader struct {
	path      string
	maxLength int // per-document truncation applied at load time
	logger    logger.ILogger
}

func NewDirLoader(path string, chunkSize int, log logger.ILogger) *DirLoader {
	return &DirLoader{
		path:      path,
		maxLength: chunkSize * 3,
		logger:    log,
	}
}

// Load reads every *.txt file under the configured path. A missing directory
// yields an empty map with a warning; unreadable files are skipped.
func (l *DirLoader) Load() (map[string]string, error) {
	if _, err := os.Stat(l.path); err != nil {
		l.logger.Warn("Knowledge", "Documents path not found", map[string]interface{}{
			"path": l.path, "error": err.Error(),
		})
		return map[string]string{}, nil
	}

	paths, err := filepath.Glob(filepath.Join(l.path, "*.txt"))
	if err != nil {
		return nil, err
	}

	content := make(map[string]string, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			l.logger.Warn("Knowledge", "Error loading document", map[string]interface{}{
				"file": p, "error": err.Error(),
			})
			continue
		}
		text := string(data)
		if len(text) > l.maxLength {
			text = text[:l.maxLength]
		}
		content[filepath.Base(p)] = text
	}

	l.logger.Info("Knowledge", "Loaded documents", map[string]interface{}{
		"count": len(content), "path": l.path,
	})
	return content, nil
}
