package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorMessageIncludesStatus(t *testing.T) {
	err := &FetchError{Provider: "pokeapi", URL: "https://api.example/pokemon", StatusCode: 502}
	if !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected status in message, got %q", err.Error())
	}
}

func TestFetchErrorMessageWithoutStatus(t *testing.T) {
	cause := errors.New("connection refused")
	err := &FetchError{Provider: "pokeapi", URL: "https://api.example/pokemon", Err: cause}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}

func TestAsFetchErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := &FetchError{Provider: "pokeapi", StatusCode: 404}
	wrapped := fmt.Errorf("resolving details: %w", inner)

	fetchErr, ok := AsFetchError(wrapped)
	if !ok {
		t.Fatal("expected AsFetchError to succeed")
	}
	if fetchErr.StatusCode != 404 {
		t.Fatalf("unexpected status %d", fetchErr.StatusCode)
	}

	if _, ok := AsFetchError(errors.New("plain")); ok {
		t.Fatal("expected AsFetchError to fail on unrelated error")
	}
}

func TestAsDecodeErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := &DecodeError{Provider: "pokeapi", Err: errors.New("unexpected EOF")}
	wrapped := fmt.Errorf("listing catalog: %w", inner)

	decodeErr, ok := AsDecodeError(wrapped)
	if !ok {
		t.Fatal("expected AsDecodeError to succeed")
	}
	if decodeErr.Provider != "pokeapi" {
		t.Fatalf("unexpected provider %q", decodeErr.Provider)
	}

	if _, ok := AsDecodeError(inner.Err); ok {
		t.Fatal("expected AsDecodeError to fail on the bare cause")
	}
}

func TestErrorsUnwrapToCause(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(&FetchError{Err: cause}, cause) {
		t.Fatal("FetchError should unwrap to its cause")
	}
	if !errors.Is(&DecodeError{Err: cause}, cause) {
		t.Fatal("DecodeError should unwrap to its cause")
	}
}
