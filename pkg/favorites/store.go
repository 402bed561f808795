package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/artem13815/jobassist/pkg/listings"
)

// ErrNoSavedJob — избранная вакансия отсутствует. Повреждённый файл
// схлопывается в этот же результат и никогда не всплывает как отдельная
// ошибка хранилища.
var ErrNoSavedJob = errors.New("no saved job found")

// Store — порт однослотового хранилища избранной вакансии.
// Save перезаписывает слот целиком; истории нет.
type Store interface {
	Save(ctx context.Context, job listings.JobListing) error
	Load(ctx context.Context) (listings.JobListing, error)
}

// FileStore хранит избранную вакансию как JSON-объект в одном файле.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, job listings.JobListing) error {
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileStore) Load(ctx context.Context) (listings.JobListing, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if err != nil {
		return listings.JobListing{}, ErrNoSavedJob
	}
	var job listings.JobListing
	if err := json.Unmarshal(data, &job); err != nil {
		return listings.JobListing{}, ErrNoSavedJob
	}
	return job, nil
}
