package client

import (
	"context"
	"time"
)

// IndexEntry liga a chave normalizada ao arquivo da ficha.
type IndexEntry struct {
	Key      string
	FileName string
}

// Clock é a fonte de "agora" usada nas datas das fichas.
type Clock func() time.Time

type Repository interface {
	// -------- Index --------
	List(ctx context.Context) ([]IndexEntry, error)

	Has(ctx context.Context, key string) (bool, error)

	// -------- Record files --------

	// Create grava uma ficha nova; ErrAlreadyExists se a chave existir.
	Create(ctx context.Context, key string, content []byte) (string, error)

	// Read devolve o texto da ficha; ErrNotFound ou ErrFileMissing.
	Read(ctx context.Context, key string) ([]byte, error)

	// Update reescreve a ficha com o resultado de fn, sob o mesmo lock.
	Update(
		ctx context.Context,
		key string,
		fn func(content []byte) ([]byte, error),
	) error

	// Delete remove arquivo e entrada do índice. Se o arquivo já tinha
	// sumido, a entrada sai do índice e ErrFileMissing é devolvido.
	Delete(ctx context.Context, key string) error
}
