package backup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/axanet-clients/internal/config"
	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
)

const contentType = "text/plain; charset=utf-8"

// Uploader é o pedaço do cliente S3 que o backup usa.
type Uploader interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

type Backuper struct {
	client Uploader
	bucket string
	prefix string
	dir    string
}

func New(client Uploader, bucket, prefix, dir string) (*Backuper, error) {
	if client == nil {
		return nil, errors.New("s3 client is required")
	}
	if bucket == "" {
		return nil, errors.New("backup bucket is required")
	}
	return &Backuper{
		client: client,
		bucket: bucket,
		prefix: prefix,
		dir:    dir,
	}, nil
}

// NewS3Client monta o cliente a partir da config; S3_ENDPOINT permite
// MinIO e afins (path-style).
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.AWSRegion,
	}
	if cfg.AWSAccessKey != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

// Run envia cada ficha .txt do diretório e devolve as chaves enviadas.
func (b *Backuper) Run(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage directory: %w", err)
	}

	uploaded := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := domain.KeyFromFileName(e.Name()); !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return uploaded, err
		}

		key := path.Join(b.prefix, e.Name())
		if err := b.upload(ctx, filepath.Join(b.dir, e.Name()), key); err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, key)
	}

	log.Printf("backup: %d record(s) sent to s3://%s/%s", len(uploaded), b.bucket, b.prefix)
	return uploaded, nil
}

func (b *Backuper) upload(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// apagado entre a listagem e o envio
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
