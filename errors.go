package golingo

import "fmt"

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates an online provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// StorageError indicates a durable store operation failure.
type StorageError struct {
	Op    string // The store operation that failed ("get", "set", ...)
	Key   string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage error: %s %q: %v", e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// InsufficientStorageError indicates a pack download was refused because the
// device does not have enough free space for the requested quality tier.
type InsufficientStorageError struct {
	Code        string // Language code of the requested pack
	RequiredMB  int
	AvailableMB int
}

func (e *InsufficientStorageError) Error() string {
	return fmt.Sprintf("insufficient storage for pack %q: need %d MB, have %d MB",
		e.Code, e.RequiredMB, e.AvailableMB)
}

// PackFetchError indicates pack content acquisition failed.
type PackFetchError struct {
	Code  string
	Cause error
}

func (e *PackFetchError) Error() string {
	return fmt.Sprintf("fetching pack %q: %v", e.Code, e.Cause)
}

func (e *PackFetchError) Unwrap() error {
	return e.Cause
}
