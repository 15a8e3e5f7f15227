package golingo

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Router is the main translation engine. It decides, per request, between
// the offline phrase-pack path and the online provider path, and memoizes
// online results through the translation cache.
type Router struct {
	provider Provider
	offline  OfflineTranslator
	cache    TranslationCache
	net      ConnectivityChecker
	log      logrus.FieldLogger
}

// Provider is the interface for online translation backends.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
}

// TranslateRequest contains the parameters for an online translation request.
type TranslateRequest struct {
	Text       string
	SourceLang string
	TargetLang string
	Context    string            // Optional disambiguation context
	Glossary   map[string]string // Preferred translations for specific phrases
}

// TranslationCache is the interface for memoizing online translations.
type TranslationCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Put(ctx context.Context, key string, data json.RawMessage) error
}

// OfflineTranslator is the interface the offline pack manager implements.
type OfflineTranslator interface {
	OfflineMode(ctx context.Context) bool
	CanTranslate(ctx context.Context, sourceLang, targetLang string) bool
	Translate(ctx context.Context, text, sourceLang, targetLang string) Translation
}

// ConnectivityChecker reports whether the device currently has network access.
type ConnectivityChecker interface {
	Online(ctx context.Context) bool
}

// RouterOption is a functional option for configuring the Router.
type RouterOption func(*Router)

// WithOffline sets the offline pack manager.
func WithOffline(offline OfflineTranslator) RouterOption {
	return func(r *Router) {
		r.offline = offline
	}
}

// WithCache sets the translation cache for the online path.
func WithCache(cache TranslationCache) RouterOption {
	return func(r *Router) {
		r.cache = cache
	}
}

// WithConnectivity sets the connectivity checker. Without one the Router
// assumes the device is online.
func WithConnectivity(net ConnectivityChecker) RouterOption {
	return func(r *Router) {
		r.net = net
	}
}

// WithLogger sets the structured logger.
func WithLogger(log logrus.FieldLogger) RouterOption {
	return func(r *Router) {
		r.log = log
	}
}

// NewRouter creates a new Router with the given online provider.
func NewRouter(provider Provider, opts ...RouterOption) *Router {
	r := &Router{
		provider: provider,
		log:      discardLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Translate routes a translation request. Offline preference is honored even
// with connectivity, but only when the required packs are installed; if the
// offline path reports its data unavailable and the device is online, the
// request falls through to the online provider instead of failing outright.
func (r *Router) Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error) {
	sourceLang = NormalizeLang(sourceLang)
	targetLang = NormalizeLang(targetLang)

	log := r.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"source":     sourceLang,
		"target":     targetLang,
	})

	// Skip if source == target
	if sourceLang == targetLang {
		return Translated(text, SourceOffline), nil
	}

	online := r.connected(ctx)

	if r.offline != nil && (r.offline.OfflineMode(ctx) || !online) {
		result := r.offline.Translate(ctx, text, sourceLang, targetLang)
		if result.Kind != KindUnavailable {
			log.WithField("path", "offline").Debug("translated offline")
			return result, nil
		}
		if !online {
			// No packs and no network: the informational result is all we have.
			log.WithField("reason", result.Reason).Debug("offline translation unavailable")
			return result, nil
		}
		log.Debug("offline data unavailable, falling back to online path")
	}

	return r.translateOnline(ctx, log, text, sourceLang, targetLang)
}

// translateOnline serves a request from the cache or the online provider.
func (r *Router) translateOnline(ctx context.Context, log logrus.FieldLogger, text, sourceLang, targetLang string) (Translation, error) {
	key := CacheKey(HashText(text), sourceLang, targetLang)

	if r.cache != nil {
		if data, ok := r.cache.Get(ctx, key); ok {
			var cached string
			if err := json.Unmarshal(data, &cached); err == nil {
				log.WithField("path", "cache").Debug("translation served from cache")
				return Translated(cached, SourceOnline), nil
			}
		}
	}

	if r.provider == nil {
		return Translation{}, &TranslationError{Message: "no online provider configured"}
	}

	out, err := r.provider.Translate(ctx, TranslateRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return Translation{}, err
	}

	if r.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = r.cache.Put(ctx, key, data) // Cache writes are best-effort
		}
	}

	log.WithField("path", "online").Debug("translated online")
	return Translated(out, SourceOnline), nil
}

// connected reports the connectivity signal, assuming online when no
// checker is configured.
func (r *Router) connected(ctx context.Context) bool {
	if r.net == nil {
		return true
	}
	return r.net.Online(ctx)
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
