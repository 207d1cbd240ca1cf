// Package client implementa el núcleo del cliente de la tienda: sesión,
// carrito local anónimo, reconciliación con el carrito del servidor y la
// compuerta de primera visita / cuestionario que decide la ruta inicial.
//
// El estado persistido vive en un Storage clave/valor (el análogo de
// localStorage) bajo claves fijas; ningún otro módulo lee esas claves
// directamente.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Claves fijas del estado persistido. Heredadas de la UI original; cambiar
// una de estas rompe la sesión guardada de los clientes existentes.
const (
	KeyUser                   = "flower_shop_user"
	KeyToken                  = "flower_shop_token"
	KeyLocalCart              = "localCart"
	KeyHasVisited             = "fer_has_visited"
	KeyQuestionnaireCompleted = "fer_questionnaire_completed"
	KeyQuestionnaireCount     = "fer_questionnaire_count"
)

// Storage almacenamiento clave/valor persistente del cliente.
type Storage interface {
	// Get devuelve el valor y si la clave existe.
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage persiste el mapa completo como JSON en un único archivo.
// La escritura es atómica (archivo temporal + rename) para que un corte a
// mitad de escritura nunca deje un archivo corrupto.
type FileStorage struct {
	path string
	log  zerolog.Logger

	mu   sync.Mutex
	data map[string]string
}

// NewFileStorage abre (o crea) el archivo de estado. Un archivo corrupto no
// es fatal: se registra y se parte de un estado vacío.
func NewFileStorage(path string, log zerolog.Logger) *FileStorage {
	s := &FileStorage{path: path, log: log, data: map[string]string{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("no se pudo leer el estado persistido")
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("estado persistido corrupto; se parte de cero")
		s.data = map[string]string{}
	}
	return s
}

// Get devuelve el valor de una clave.
func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set guarda una clave y persiste el archivo completo.
func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.persist()
}

// Delete elimina una clave y persiste el archivo completo.
func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.persist()
}

// persist escribe el mapa entero. Llamar con el mutex tomado.
func (s *FileStorage) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// MemStorage almacenamiento en memoria para tests.
type MemStorage struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemStorage construye un almacenamiento vacío.
func NewMemStorage() *MemStorage {
	return &MemStorage{data: map[string]string{}}
}

func (s *MemStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
