package golingo

import (
	"errors"
	"testing"
)

func TestTranslationError(t *testing.T) {
	cause := errors.New("underlying error")
	err := &TranslationError{Message: "translation failed", Cause: cause}

	if err.Error() != "translation failed: underlying error" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	// Without cause
	err2 := &TranslationError{Message: "simple error"}
	if err2.Error() != "simple error" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Message: "rate limited", Retryable: true}

	if err.Error() != "provider error: rate limited" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !err.Retryable {
		t.Error("error should be retryable")
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := &StorageError{Op: "set", Key: "offline:packs", Cause: cause}

	if err.Error() != `storage error: set "offline:packs": disk full` {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestInsufficientStorageError(t *testing.T) {
	err := &InsufficientStorageError{Code: "fr", RequiredMB: 30, AvailableMB: 20}

	expected := `insufficient storage for pack "fr": need 30 MB, have 20 MB`
	if err.Error() != expected {
		t.Errorf("unexpected error message: %s, want %s", err.Error(), expected)
	}
}

func TestPackFetchError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &PackFetchError{Code: "ja", Cause: cause}

	if err.Error() != `fetching pack "ja": connection reset` {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}
