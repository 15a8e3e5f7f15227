// Package provider defines the online translation provider interface and
// implementations.
package provider

import "github.com/LinguaLabs/golingo"

// Provider is the interface for online translation backends.
// This is an alias to the main package interface for convenience.
type Provider = golingo.Provider

// TranslateRequest is an alias to the main package type.
type TranslateRequest = golingo.TranslateRequest
