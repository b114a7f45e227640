package client

import (
	"strings"
	"testing"

	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

func TestSpliceService_InsertsBelowHeader(t *testing.T) {
	content := Serialize(NewRecord("Ana", "1", "a@b.c", "primero", fixedNow))

	first := FormatServiceLine(models.ServiceEntry{Date: "2025-03-08", Description: "segundo"})
	second := FormatServiceLine(models.ServiceEntry{Date: "2025-03-09", Description: "tercero"})

	out := string(SpliceService(SpliceService(content, first), second))

	iHeader := strings.Index(out, ServicesHeader)
	iThird := strings.Index(out, "tercero")
	iSecond := strings.Index(out, "segundo")
	iFirst := strings.Index(out, "primero")
	if !(iHeader < iThird && iThird < iSecond && iSecond < iFirst) {
		t.Fatalf("expected most-recent-first order below header:\n%s", out)
	}
	if strings.Count(out, ServicesHeader) != 1 {
		t.Fatalf("header duplicated:\n%s", out)
	}
}

func TestSpliceService_PreservesUnknownLines(t *testing.T) {
	content := []byte("Nombre: Ana\nnota: cliente VIP\n\nSERVICIOS:\n  - Fecha: 2025-01-01, Descripción: x\n")
	line := FormatServiceLine(models.ServiceEntry{Date: "2025-01-02", Description: "y"})

	want := "Nombre: Ana\nnota: cliente VIP\n\nSERVICIOS:\n" + line + "  - Fecha: 2025-01-01, Descripción: x\n"
	if got := string(SpliceService(content, line)); got != want {
		t.Fatalf("unexpected splice:\n%s", got)
	}
}

func TestSpliceService_AppendsSectionWhenHeaderMissing(t *testing.T) {
	content := []byte("Nombre: Ana\nServicios:\n")
	line := FormatServiceLine(models.ServiceEntry{Date: "2025-01-02", Description: "y"})

	want := "Nombre: Ana\nServicios:\n\nSERVICIOS:\n" + line
	if got := string(SpliceService(content, line)); got != want {
		t.Fatalf("unexpected splice:\n%q", got)
	}
}

func TestSpliceService_HeaderWithoutTrailingNewline(t *testing.T) {
	content := []byte("Nombre: Ana\n\nSERVICIOS:")
	line := FormatServiceLine(models.ServiceEntry{Date: "2025-01-02", Description: "y"})

	want := "Nombre: Ana\n\nSERVICIOS:\n" + line
	if got := string(SpliceService(content, line)); got != want {
		t.Fatalf("unexpected splice:\n%q", got)
	}
}
