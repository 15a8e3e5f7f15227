package offline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LinguaLabs/golingo"
	"github.com/LinguaLabs/golingo/store"
)

func newTestManager(opts ...ManagerOption) (*Manager, *store.MemoryStore) {
	kv := store.NewMemoryStore()
	return NewManager(kv, opts...), kv
}

func installPack(t *testing.T, m *Manager, code string, quality golingo.QualityTier) {
	t.Helper()
	if _, err := m.DownloadPack(context.Background(), code, "", quality); err != nil {
		t.Fatalf("installing %s pack: %v", code, err)
	}
}

func TestOfflineMode_DefaultsFalse(t *testing.T) {
	m, _ := newTestManager()

	if m.OfflineMode(context.Background()) {
		t.Error("offline mode should default to false")
	}
}

func TestOfflineMode_RoundTrip(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	if err := m.SetOfflineMode(ctx, true); err != nil {
		t.Fatalf("SetOfflineMode failed: %v", err)
	}
	if !m.OfflineMode(ctx) {
		t.Error("offline mode should be on")
	}

	if err := m.SetOfflineMode(ctx, false); err != nil {
		t.Fatalf("SetOfflineMode failed: %v", err)
	}
	if m.OfflineMode(ctx) {
		t.Error("offline mode should be off")
	}
}

func TestOfflineMode_GarbageValueReadsFalse(t *testing.T) {
	m, kv := newTestManager()
	ctx := context.Background()

	kv.Set(ctx, "offline:mode", "maybe?")

	if m.OfflineMode(ctx) {
		t.Error("an unparsable flag should read as false")
	}
}

func TestDownloadPack_InsufficientStorage(t *testing.T) {
	m, _ := newTestManager(WithStorageMeter(FixedMeter(20)))
	ctx := context.Background()

	_, err := m.DownloadPack(ctx, "fr", "French", golingo.QualityPremium)
	if err == nil {
		t.Fatal("expected insufficient storage error")
	}

	var insufficient *golingo.InsufficientStorageError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected *InsufficientStorageError, got %T", err)
	}
	if insufficient.RequiredMB != 30 || insufficient.AvailableMB != 20 {
		t.Errorf("required/available = %d/%d, want 30/20", insufficient.RequiredMB, insufficient.AvailableMB)
	}

	// The failed download must not leave any record behind
	if m.IsDownloaded(ctx, "fr") {
		t.Error("pack should not be installed after a failed download")
	}
	if used := m.TotalStorageUsed(ctx); used != 0 {
		t.Errorf("TotalStorageUsed = %d, want 0", used)
	}
}

func TestDownloadPack_ExactFitSucceeds(t *testing.T) {
	m, _ := newTestManager(WithStorageMeter(FixedMeter(30)))

	installPack(t, m, "fr", golingo.QualityPremium)

	if !m.IsDownloaded(context.Background(), "fr") {
		t.Error("pack should be installed when free space equals the tier size")
	}
}

func TestDownloadPack_UnknownQuality(t *testing.T) {
	m, _ := newTestManager()

	if _, err := m.DownloadPack(context.Background(), "es", "", golingo.QualityTier("ultra")); err == nil {
		t.Error("expected error for unknown quality tier")
	}
}

func TestDownloadPack_SnapshotsTier(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	pack, err := m.DownloadPack(ctx, "ES", "", golingo.QualityStandard)
	if err != nil {
		t.Fatal(err)
	}

	if pack.Code != "es" {
		t.Errorf("Code = %q, want normalized es", pack.Code)
	}
	if pack.Name != "Spanish" {
		t.Errorf("Name = %q, want default display name", pack.Name)
	}
	if pack.SizeMB != 15 {
		t.Errorf("SizeMB = %d, want 15", pack.SizeMB)
	}
	if len(pack.Features) != 3 {
		t.Errorf("%d features, want 3", len(pack.Features))
	}
	if pack.InstalledAt.IsZero() {
		t.Error("InstalledAt should be set")
	}
}

func TestDownloadPack_ReplaceSemantics(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	installPack(t, m, "es", golingo.QualityBasic)
	installPack(t, m, "es", golingo.QualityPremium)

	packs := m.InstalledPacks(ctx)
	if len(packs) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(packs))
	}
	if packs[0].Quality != golingo.QualityPremium {
		t.Errorf("Quality = %s, want premium", packs[0].Quality)
	}
	if packs[0].SizeMB != 30 {
		t.Errorf("SizeMB = %d, want 30 (latest quality)", packs[0].SizeMB)
	}
	if used := m.TotalStorageUsed(ctx); used != 30 {
		t.Errorf("TotalStorageUsed = %d, want 30", used)
	}
}

func TestDownloadPack_Cancellation(t *testing.T) {
	m, _ := newTestManager(WithFetcher(SimulatedFetcher{Delay: time.Second}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := m.DownloadPack(ctx, "ja", "", golingo.QualityBasic)
	if err == nil {
		t.Fatal("expected cancellation error")
	}

	var fetchErr *golingo.PackFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *PackFetchError, got %T", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline cause, got %v", err)
	}

	if m.IsDownloaded(context.Background(), "ja") {
		t.Error("cancelled download must not install a pack")
	}
}

func TestDeletePack(t *testing.T) {
	m, kv := newTestManager()
	ctx := context.Background()

	installPack(t, m, "es", golingo.QualityBasic)

	if err := m.DeletePack(ctx, "es"); err != nil {
		t.Fatalf("DeletePack failed: %v", err)
	}
	if m.IsDownloaded(ctx, "es") {
		t.Error("pack should be gone")
	}

	// Both metadata and the data blob are removed
	if _, err := kv.Get(ctx, "offline:pack:es"); !errors.Is(err, store.ErrNotFound) {
		t.Error("pack blob should be removed")
	}

	// Deleting an absent pack is a no-op
	if err := m.DeletePack(ctx, "es"); err != nil {
		t.Errorf("deleting an absent pack should not error: %v", err)
	}
}

func TestTotalStorageUsed(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	installPack(t, m, "es", golingo.QualityBasic)    // 5 MB
	installPack(t, m, "fr", golingo.QualityStandard) // 15 MB

	if used := m.TotalStorageUsed(ctx); used != 20 {
		t.Errorf("TotalStorageUsed = %d, want 20", used)
	}

	if err := m.DeletePack(ctx, "es"); err != nil {
		t.Fatal(err)
	}
	if used := m.TotalStorageUsed(ctx); used != 15 {
		t.Errorf("TotalStorageUsed = %d, want 15 after delete", used)
	}
}

func TestInstalledPacks_Sorted(t *testing.T) {
	m, _ := newTestManager()

	installPack(t, m, "fr", golingo.QualityBasic)
	installPack(t, m, "de", golingo.QualityBasic)
	installPack(t, m, "es", golingo.QualityBasic)

	packs := m.InstalledPacks(context.Background())
	want := []string{"de", "es", "fr"}
	if len(packs) != len(want) {
		t.Fatalf("got %d packs, want %d", len(packs), len(want))
	}
	for i, code := range want {
		if packs[i].Code != code {
			t.Errorf("packs[%d].Code = %q, want %q", i, packs[i].Code, code)
		}
	}
}

func TestCanTranslate(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	installPack(t, m, "en", golingo.QualityBasic)
	installPack(t, m, "es", golingo.QualityBasic)

	if !m.CanTranslate(ctx, "en", "es") {
		t.Error("both packs installed, CanTranslate should be true")
	}
	if m.CanTranslate(ctx, "en", "de") {
		t.Error("de pack missing, CanTranslate should be false")
	}
}

func TestTranslate_ExactMatch(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	installPack(t, m, "en", golingo.QualityBasic)
	installPack(t, m, "es", golingo.QualityBasic)

	result := m.Translate(ctx, "Hello", "en", "es")
	if result.Kind != golingo.KindTranslated {
		t.Fatalf("Kind = %v, want KindTranslated (reason: %s)", result.Kind, result.Reason)
	}
	if result.Text != "Hola" {
		t.Errorf("Text = %q, want Hola", result.Text)
	}
	if result.Source != golingo.SourceOffline {
		t.Errorf("Source = %q, want offline", result.Source)
	}
}

func TestTranslate_MatchIsNormalized(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	installPack(t, m, "en", golingo.QualityBasic)
	installPack(t, m, "fr", golingo.QualityBasic)

	// Trim and case-fold before matching
	result := m.Translate(ctx, "  hello  ", "en", "fr")
	if result.Text != "Bonjour" {
		t.Errorf("Text = %q, want Bonjour", result.Text)
	}
}

func TestTranslate_NoMatchReturnsPlaceholder(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	installPack(t, m, "en", golingo.QualityBasic)
	installPack(t, m, "es", golingo.QualityBasic)

	result := m.Translate(ctx, "Good night", "en", "es")
	if result.Kind != golingo.KindPlaceholder {
		t.Fatalf("Kind = %v, want KindPlaceholder", result.Kind)
	}
	if result.Text != "[Good night]" {
		t.Errorf("Text = %q, want tagged placeholder", result.Text)
	}
	if !result.IsInformational() {
		t.Error("a placeholder must be distinguishable from a real translation")
	}
}

func TestTranslate_MissingPackUnavailable(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	// Only the source pack is installed
	installPack(t, m, "en", golingo.QualityBasic)

	result := m.Translate(ctx, "Hello", "en", "de")
	if result.Kind != golingo.KindUnavailable {
		t.Fatalf("Kind = %v, want KindUnavailable", result.Kind)
	}
	if result.Reason == "" {
		t.Error("Reason must explain which pack is missing")
	}
	if !result.IsInformational() {
		t.Error("unavailable result must be informational")
	}
}

func TestTranslate_BothPacksMissingUnavailable(t *testing.T) {
	m, _ := newTestManager()

	result := m.Translate(context.Background(), "Hello", "en", "de")
	if result.Kind != golingo.KindUnavailable {
		t.Fatalf("Kind = %v, want KindUnavailable", result.Kind)
	}
}

func TestTranslate_CorruptBlobUnavailable(t *testing.T) {
	m, kv := newTestManager()
	ctx := context.Background()

	installPack(t, m, "en", golingo.QualityBasic)
	installPack(t, m, "es", golingo.QualityBasic)

	// Corrupt the source blob; the lookup degrades to unavailable, no error
	kv.Set(ctx, "offline:pack:en", "{broken")

	result := m.Translate(ctx, "Hello", "en", "es")
	if result.Kind != golingo.KindUnavailable {
		t.Fatalf("Kind = %v, want KindUnavailable", result.Kind)
	}
}

func TestLoadPacks_CorruptMetadataSelfHeals(t *testing.T) {
	m, kv := newTestManager()
	ctx := context.Background()

	kv.Set(ctx, "offline:packs", "[not a map]")

	if len(m.InstalledPacks(ctx)) != 0 {
		t.Error("corrupt metadata should read as an empty pack set")
	}
	// The corrupt record was evicted
	if _, err := kv.Get(ctx, "offline:packs"); !errors.Is(err, store.ErrNotFound) {
		t.Error("corrupt metadata should be removed on encounter")
	}

	// And the manager still works afterwards
	installPack(t, m, "es", golingo.QualityBasic)
	if !m.IsDownloaded(ctx, "es") {
		t.Error("manager should recover after evicting corrupt metadata")
	}
}
