// Package offline manages downloadable language packs and serves the
// offline translation path.
//
// The manager owns the installed-pack set and the offline-mode flag in the
// durable store; no other component writes those keys.
package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/LinguaLabs/golingo"
	"github.com/LinguaLabs/golingo/store"
)

// Store keys owned by the manager. Everything lives under the "offline:"
// namespace of the shared store.
const (
	offlineModeKey = "offline:mode"
	packsKey       = "offline:packs"
	packBlobPrefix = "offline:pack:"
)

// Manager installs, lists, and removes language packs, tracks the
// offline-mode flag, and performs offline phrase translation.
//
// Download and delete read-modify-write the installed-pack set, so all
// mutations run under one mutex.
type Manager struct {
	store store.KeyValueStore
	meter StorageMeter
	fetch PackFetcher
	log   logrus.FieldLogger

	mu  sync.Mutex
	now func() time.Time // Overridable in tests
}

// ManagerOption is a functional option for configuring the Manager.
type ManagerOption func(*Manager)

// WithStorageMeter sets the device free-space query used by the download
// precondition.
func WithStorageMeter(meter StorageMeter) ManagerOption {
	return func(m *Manager) {
		m.meter = meter
	}
}

// WithFetcher sets the pack content fetcher.
func WithFetcher(fetch PackFetcher) ManagerOption {
	return func(m *Manager) {
		m.fetch = fetch
	}
}

// WithLogger sets the structured logger.
func WithLogger(log logrus.FieldLogger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a pack manager backed by kv. Without options it uses
// an effectively unlimited storage meter and the simulated fetcher.
func NewManager(kv store.KeyValueStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		store: kv,
		meter: FixedMeter(1 << 20),
		fetch: SimulatedFetcher{},
		log:   discardLogger(),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// OfflineMode reports the persisted offline-mode preference. Absence or a
// read error defaults to false.
func (m *Manager) OfflineMode(ctx context.Context) bool {
	raw, err := m.store.Get(ctx, offlineModeKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.log.WithError(err).Warn("reading offline-mode flag failed")
		}
		return false
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return enabled
}

// SetOfflineMode persists the offline-mode preference. On failure the flag
// is unchanged; read sites keep seeing the old value.
func (m *Manager) SetOfflineMode(ctx context.Context, enabled bool) error {
	if err := m.store.Set(ctx, offlineModeKey, strconv.FormatBool(enabled)); err != nil {
		m.log.WithError(err).Warn("persisting offline-mode flag failed")
		return &golingo.StorageError{Op: "set", Key: offlineModeKey, Cause: err}
	}
	return nil
}

// IsDownloaded reports whether a pack for the language code is installed.
func (m *Manager) IsDownloaded(ctx context.Context, code string) bool {
	packs := m.loadPacks(ctx)
	_, ok := packs[golingo.NormalizeLang(code)]
	return ok
}

// InstalledPacks returns the installed packs sorted by language code.
func (m *Manager) InstalledPacks(ctx context.Context) []golingo.LanguagePack {
	packs := m.loadPacks(ctx)

	out := make([]golingo.LanguagePack, 0, len(packs))
	for _, pack := range packs {
		out = append(out, pack)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// DownloadPack installs a language pack at the requested quality tier,
// replacing any previously installed pack for the same code.
//
// The download is refused with an *golingo.InsufficientStorageError when
// the device lacks free space for the tier. Acquisition honors ctx, so a
// slow download can be cancelled.
func (m *Manager) DownloadPack(ctx context.Context, code, name string, quality golingo.QualityTier) (*golingo.LanguagePack, error) {
	code = golingo.NormalizeLang(code)
	if code == "" {
		return nil, &golingo.TranslationError{Message: "language code required"}
	}
	if !quality.Valid() {
		return nil, &golingo.TranslationError{Message: fmt.Sprintf("unknown quality tier %q", quality)}
	}
	if name == "" {
		name = golingo.GetLanguageName(code)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	spec := quality.Spec()

	availMB, err := m.meter.AvailableMB(ctx)
	if err != nil {
		return nil, &golingo.StorageError{Op: "statfs", Cause: err}
	}
	if availMB < spec.SizeMB {
		return nil, &golingo.InsufficientStorageError{
			Code:        code,
			RequiredMB:  spec.SizeMB,
			AvailableMB: availMB,
		}
	}

	phrases, err := m.fetch.Fetch(ctx, code, quality)
	if err != nil {
		return nil, &golingo.PackFetchError{Code: code, Cause: err}
	}

	blob, err := json.Marshal(phrases)
	if err != nil {
		return nil, &golingo.StorageError{Op: "marshal", Key: packBlobPrefix + code, Cause: err}
	}
	if err := m.store.Set(ctx, packBlobPrefix+code, string(blob)); err != nil {
		return nil, &golingo.StorageError{Op: "set", Key: packBlobPrefix + code, Cause: err}
	}

	pack := golingo.LanguagePack{
		Code:        code,
		Name:        name,
		Quality:     quality,
		SizeMB:      spec.SizeMB,
		Features:    append([]string(nil), spec.Features...),
		InstalledAt: m.now().UTC(),
	}

	packs := m.loadPacks(ctx)
	packs[code] = pack
	if err := m.savePacks(ctx, packs); err != nil {
		return nil, err
	}

	m.log.WithFields(logrus.Fields{
		"code":    code,
		"quality": quality,
		"size_mb": spec.SizeMB,
	}).Info("language pack installed")

	return &pack, nil
}

// DeletePack removes a pack's data blob and metadata record. Deleting a
// pack that is not installed is a no-op.
func (m *Manager) DeletePack(ctx context.Context, code string) error {
	code = golingo.NormalizeLang(code)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, packBlobPrefix+code); err != nil {
		return &golingo.StorageError{Op: "delete", Key: packBlobPrefix + code, Cause: err}
	}

	packs := m.loadPacks(ctx)
	if _, ok := packs[code]; !ok {
		return nil
	}
	delete(packs, code)
	if err := m.savePacks(ctx, packs); err != nil {
		return err
	}

	m.log.WithField("code", code).Info("language pack deleted")
	return nil
}

// TotalStorageUsed returns the sum of installed pack sizes in MB.
func (m *Manager) TotalStorageUsed(ctx context.Context) int {
	total := 0
	for _, pack := range m.loadPacks(ctx) {
		total += pack.SizeMB
	}
	return total
}

// CanTranslate reports whether packs for both languages are installed.
func (m *Manager) CanTranslate(ctx context.Context, sourceLang, targetLang string) bool {
	packs := m.loadPacks(ctx)
	_, src := packs[golingo.NormalizeLang(sourceLang)]
	_, dst := packs[golingo.NormalizeLang(targetLang)]
	return src && dst
}

// Translate performs the offline phrase lookup. It never returns an error:
// missing packs and unreadable data yield a tagged Unavailable result, and
// input without an exact phrase match yields a tagged Placeholder.
func (m *Manager) Translate(ctx context.Context, text, sourceLang, targetLang string) golingo.Translation {
	sourceLang = golingo.NormalizeLang(sourceLang)
	targetLang = golingo.NormalizeLang(targetLang)

	packs := m.loadPacks(ctx)
	var missing []string
	for _, code := range []string{sourceLang, targetLang} {
		if _, ok := packs[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, code := range missing {
			names[i] = golingo.GetLanguageName(code)
		}
		return golingo.Unavailable(fmt.Sprintf(
			"offline translation requires the %s language pack(s); download them or connect to the internet",
			strings.Join(names, " and ")))
	}

	source, err := m.loadPhrases(ctx, sourceLang)
	if err == nil {
		var target []golingo.Phrase
		target, err = m.loadPhrases(ctx, targetLang)
		if err == nil {
			return matchPhrase(text, source, target)
		}
	}

	m.log.WithError(err).Warn("reading pack data failed")
	return golingo.Unavailable("offline translation data could not be read; try re-downloading the language packs")
}

// matchPhrase searches the source table for an exact match on normalized
// text, then resolves the same phrase ID in the target table.
func matchPhrase(text string, source, target []golingo.Phrase) golingo.Translation {
	normalized := normalizeText(text)
	for _, phrase := range source {
		if normalizeText(phrase.Text) != normalized {
			continue
		}
		for _, candidate := range target {
			if candidate.ID == phrase.ID {
				return golingo.Translated(candidate.Text, golingo.SourceOffline)
			}
		}
		break
	}
	return golingo.Placeholder(text)
}

func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// loadPacks reads the installed-pack set. Absence, read errors, and corrupt
// records all degrade to an empty set; a corrupt record is evicted so it
// cannot wedge the manager permanently.
func (m *Manager) loadPacks(ctx context.Context) map[string]golingo.LanguagePack {
	raw, err := m.store.Get(ctx, packsKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.log.WithError(err).Warn("reading installed packs failed")
		}
		return make(map[string]golingo.LanguagePack)
	}

	packs := make(map[string]golingo.LanguagePack)
	if err := json.Unmarshal([]byte(raw), &packs); err != nil {
		m.log.WithError(err).Warn("evicting corrupt pack metadata")
		if err := m.store.Delete(ctx, packsKey); err != nil {
			m.log.WithError(err).Warn("evicting corrupt pack metadata failed")
		}
		return make(map[string]golingo.LanguagePack)
	}
	return packs
}

func (m *Manager) savePacks(ctx context.Context, packs map[string]golingo.LanguagePack) error {
	raw, err := json.Marshal(packs)
	if err != nil {
		return &golingo.StorageError{Op: "marshal", Key: packsKey, Cause: err}
	}
	if err := m.store.Set(ctx, packsKey, string(raw)); err != nil {
		return &golingo.StorageError{Op: "set", Key: packsKey, Cause: err}
	}
	return nil
}

func (m *Manager) loadPhrases(ctx context.Context, code string) ([]golingo.Phrase, error) {
	raw, err := m.store.Get(ctx, packBlobPrefix+code)
	if err != nil {
		return nil, err
	}

	var phrases []golingo.Phrase
	if err := json.Unmarshal([]byte(raw), &phrases); err != nil {
		return nil, err
	}
	return phrases, nil
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Verify Manager implements the Router's offline interface
var _ golingo.OfflineTranslator = (*Manager)(nil)
