package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrMalformedOutput — содержимое слота последнего поиска не декодируется
// как список вакансий.
var ErrMalformedOutput = errors.New("stored search output is malformed")

// OutputStore — порт для слота «результат последнего поиска».
// Слот перезаписывается целиком при каждом поиске; конкурентные поиски
// гонятся по принципу last-write-wins, и читатель может увидеть результат
// чужого запроса. Это осознанное ограничение однопользовательского сервиса.
type OutputStore interface {
	Write(ctx context.Context, jobs []JobListing) error
	Read(ctx context.Context) ([]JobListing, error)
}

// FileOutputStore хранит слот как JSON-массив в одном файле.
type FileOutputStore struct {
	mu   sync.Mutex
	path string
}

func NewFileOutputStore(path string) *FileOutputStore {
	return &FileOutputStore{path: path}
}

func (s *FileOutputStore) Write(ctx context.Context, jobs []JobListing) error {
	if jobs == nil {
		jobs = []JobListing{}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileOutputStore) Read(ctx context.Context) ([]JobListing, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	var jobs []JobListing
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return jobs, nil
}
