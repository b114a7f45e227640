package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBusiness_ThroughWrapping(t *testing.T) {
	base := ErrBusiness("client_not_found")
	wrapped := fmt.Errorf("view: %w", base)

	if !IsBusiness(wrapped, "client_not_found") {
		t.Fatal("expected wrapped business error to match")
	}
	if IsBusiness(wrapped, "file_missing") {
		t.Fatal("unexpected match on another code")
	}
	if !errors.Is(wrapped, ErrBusiness("client_not_found")) {
		t.Fatal("errors.Is should compare business errors by code")
	}
	if Code(wrapped) != "client_not_found" {
		t.Fatalf("unexpected code %q", Code(wrapped))
	}
	if Code(errors.New("disk full")) != "" {
		t.Fatal("plain errors carry no code")
	}
}
