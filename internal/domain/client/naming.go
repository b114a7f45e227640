package client

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	FileExt      = ".txt"
	IDDateLayout = "20060102"
)

// Normalize converte o nome de exibição na chave de armazenamento.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ValidKey recusa chaves que sairiam do diretório de fichas ou que
// não voltariam como a mesma chave na varredura.
func ValidKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	if strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return false
	}
	return filepath.IsLocal(FileName(key))
}

func FileName(key string) string {
	return key + FileExt
}

// KeyFromFileName aceita apenas arquivos .txt cuja chave é válida.
func KeyFromFileName(name string) (string, bool) {
	if !strings.HasSuffix(name, FileExt) {
		return "", false
	}
	key := strings.TrimSuffix(name, FileExt)
	if !ValidKey(key) {
		return "", false
	}
	return key, true
}

func GenerateClientID(name string, now time.Time) string {
	return Normalize(name) + "_" + now.Format(IDDateLayout)
}

// Caser guarda estado, então um novo por chamada.
func DisplayName(key string) string {
	return cases.Title(language.Spanish).String(strings.ReplaceAll(key, "_", " "))
}
