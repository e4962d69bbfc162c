package storage

import (
	"os"
	"path/filepath"
	"sync"
)

// FileStore guarda cada clave como un archivo <clave>.json dentro de un
// directorio base. Es el equivalente local del localStorage del navegador:
// un solo proceso escribe, el último write gana.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore crea un almacenamiento respaldado por archivos en baseDir
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) Read(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (s *FileStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.pathFor(key), []byte(value), 0o644)
}

func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}
