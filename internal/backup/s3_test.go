package backup

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeUploader struct {
	objects map[string]string
	types   map[string]string
	failOn  string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: map[string]string{}, types: map[string]string{}}
}

func (f *fakeUploader) PutObject(
	ctx context.Context,
	in *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	key := aws.ToString(in.Key)
	if key == f.failOn {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+key] = string(body)
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func writeRecords(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRun_UploadsOnlyRecords(t *testing.T) {
	dir := t.TempDir()
	writeRecords(t, dir, map[string]string{
		"ana.txt":       "Nombre: Ana\n",
		"beto.txt":      "Nombre: Beto\n",
		"README.md":     "no",
		".axanet-1.tmp": "no",
	})

	up := newFakeUploader()
	b, err := New(up, "axanet-backups", "daily", dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	keys, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "daily/ana.txt" || keys[1] != "daily/beto.txt" {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if up.objects["axanet-backups/daily/ana.txt"] != "Nombre: Ana\n" {
		t.Fatalf("unexpected object body: %q", up.objects["axanet-backups/daily/ana.txt"])
	}
	if up.types["daily/beto.txt"] != contentType {
		t.Fatalf("unexpected content type %q", up.types["daily/beto.txt"])
	}
}

func TestRun_StopsOnUploadError(t *testing.T) {
	dir := t.TempDir()
	writeRecords(t, dir, map[string]string{"ana.txt": "a", "beto.txt": "b"})

	up := newFakeUploader()
	up.failOn = "beto.txt"
	b, _ := New(up, "bucket", "", dir)

	keys, err := b.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(keys) != 1 || keys[0] != "ana.txt" {
		t.Fatalf("expected only ana.txt uploaded, got %v", keys)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, "bucket", "", "."); err == nil {
		t.Fatal("expected error for nil client")
	}
	if _, err := New(newFakeUploader(), "", "", "."); err == nil {
		t.Fatal("expected error for empty bucket")
	}
}
