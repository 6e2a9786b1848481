package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store es un almacén local de blobs con clave, persistido en disco: el análogo
// del localStorage del navegador. Una clave = un archivo JSON bajo dir.
//
// WithLock serializa leer-modificar-escribir por clave: dos adiciones al carrito
// despachadas casi a la vez no deben perderse mutuamente la escritura.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore crea el directorio si no existe.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("localstore: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Read devuelve el contenido de la clave, o (nil, nil) si no existe.
func (s *Store) Read(key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	return raw, nil
}

// Write reescribe la entrada completa de forma atómica (archivo temporal +
// rename) para que un corte a mitad de escritura nunca deje una entrada a medias.
func (s *Store) Write(key string, data []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, "."+s.filename(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("localstore: archivo temporal para %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: renombrar %s: %w", key, err)
	}
	return nil
}

// Delete elimina la entrada; borrar una clave inexistente no es error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: eliminar %s: %w", key, err)
	}
	return nil
}

// WithLock ejecuta fn con el candado exclusivo de la clave tomado.
func (s *Store) WithLock(key string, fn func() error) error {
	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, s.filename(key))
}

// filename sanea la clave: solo letras, dígitos y guiones llegan al nombre de
// archivo (las claves reales son UUIDs con prefijo, esto es una red de seguridad).
func (s *Store) filename(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + ".json"
}
