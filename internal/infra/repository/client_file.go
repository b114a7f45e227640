package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
)

// ClientFileRepository guarda uma ficha .txt por cliente num diretório
// plano e mantém o índice chave → arquivo em memória, na ordem de
// varredura do diretório seguida da ordem de criação.
type ClientFileRepository struct {
	dir string

	mu    sync.RWMutex
	index map[string]string
	order []string
}

func NewClientFileRepository(dir string) (*ClientFileRepository, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	r := &ClientFileRepository{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ClientFileRepository) Dir() string {
	return r.dir
}

// Reload reconstrói o índice a partir do diretório.
func (r *ClientFileRepository) Reload() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to list storage directory: %w", err)
	}

	index := make(map[string]string, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, ok := domain.KeyFromFileName(e.Name())
		if !ok {
			continue
		}
		index[key] = e.Name()
		order = append(order, key)
	}

	r.mu.Lock()
	r.index = index
	r.order = order
	r.mu.Unlock()
	return nil
}

// --------------------------------------------------
// Index
// --------------------------------------------------

func (r *ClientFileRepository) List(ctx context.Context) ([]domain.IndexEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.IndexEntry, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, domain.IndexEntry{Key: key, FileName: r.index[key]})
	}
	return out, nil
}

func (r *ClientFileRepository) Has(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !domain.ValidKey(key) {
		return false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[key]
	return ok, nil
}

// --------------------------------------------------
// Record files
// --------------------------------------------------

func (r *ClientFileRepository) Create(
	ctx context.Context,
	key string,
	content []byte,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !domain.ValidKey(key) {
		return "", domain.ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[key]; ok {
		return "", domain.ErrAlreadyExists
	}

	name := domain.FileName(key)
	path := filepath.Join(r.dir, name)

	// arquivo criado por fora depois da varredura: indexa e recusa
	if _, err := os.Stat(path); err == nil {
		r.insert(key, name)
		return "", domain.ErrAlreadyExists
	}

	if err := writeFileAtomic(path, content); err != nil {
		return "", err
	}

	r.insert(key, name)
	return name, nil
}

func (r *ClientFileRepository) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !domain.ValidKey(key) {
		return nil, domain.ErrInvalidName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.index[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.readFile(name)
}

func (r *ClientFileRepository) Update(
	ctx context.Context,
	key string,
	fn func(content []byte) ([]byte, error),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.ValidKey(key) {
		return domain.ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.index[key]
	if !ok {
		return domain.ErrNotFound
	}

	content, err := r.readFile(name)
	if err != nil {
		return err
	}

	updated, err := fn(content)
	if err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(r.dir, name), updated)
}

func (r *ClientFileRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.ValidKey(key) {
		return domain.ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.index[key]
	if !ok {
		return domain.ErrNotFound
	}

	if err := os.Remove(filepath.Join(r.dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.remove(key)
			return domain.ErrFileMissing
		}
		return fmt.Errorf("failed to remove record file: %w", err)
	}

	r.remove(key)
	return nil
}

// --------------------------------------------------
// helpers (chamados com o lock já adquirido)
// --------------------------------------------------

func (r *ClientFileRepository) readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrFileMissing
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return data, nil
}

func (r *ClientFileRepository) insert(key, name string) {
	if _, ok := r.index[key]; !ok {
		r.order = append(r.order, key)
	}
	r.index[key] = name
}

func (r *ClientFileRepository) remove(key string) {
	delete(r.index, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Compile-time check
var _ domain.Repository = (*ClientFileRepository)(nil)
