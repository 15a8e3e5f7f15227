package golingo

import "time"

// QualityTier selects a language pack's storage footprint and feature set.
type QualityTier string

const (
	// QualityBasic is the smallest pack: common travel phrases only.
	QualityBasic QualityTier = "basic"
	// QualityStandard adds extended vocabulary and grammar hints.
	QualityStandard QualityTier = "standard"
	// QualityPremium adds voice data and idiomatic expressions.
	QualityPremium QualityTier = "premium"
)

// TierSpec describes the fixed footprint of a quality tier.
type TierSpec struct {
	SizeMB   int
	Features []string
}

// TierSpecs maps each quality tier to its descriptor. Feature sets are
// strictly additive: every tier includes the features of the ones below it.
var TierSpecs = map[QualityTier]TierSpec{
	QualityBasic: {
		SizeMB:   5,
		Features: []string{"common-phrases"},
	},
	QualityStandard: {
		SizeMB:   15,
		Features: []string{"common-phrases", "extended-vocabulary", "grammar-hints"},
	},
	QualityPremium: {
		SizeMB:   30,
		Features: []string{"common-phrases", "extended-vocabulary", "grammar-hints", "voice-data", "idioms"},
	},
}

// Spec returns the descriptor for the tier. Unknown tiers fall back to basic.
func (q QualityTier) Spec() TierSpec {
	if spec, ok := TierSpecs[q]; ok {
		return spec
	}
	return TierSpecs[QualityBasic]
}

// Valid reports whether q is a known quality tier.
func (q QualityTier) Valid() bool {
	_, ok := TierSpecs[q]
	return ok
}

// Phrase is one entry in a language pack's phrase table. The ID is stable
// across languages: looking up the same ID in another pack yields the
// equivalent phrase.
type Phrase struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LanguagePack is the metadata record for an installed offline pack.
// Features and SizeMB are snapshotted from the tier at install time.
type LanguagePack struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Quality     QualityTier `json:"quality"`
	SizeMB      int         `json:"sizeMB"`
	Features    []string    `json:"features"`
	InstalledAt time.Time   `json:"installedAt"`
}

// TranslationKind distinguishes genuine translations from the degraded
// results the offline path can produce.
type TranslationKind int

const (
	// KindTranslated is a real translation (online, or an exact offline
	// phrase match).
	KindTranslated TranslationKind = iota
	// KindPlaceholder is a synthetic offline result produced when no
	// phrase matched. It is not a translation.
	KindPlaceholder
	// KindUnavailable means the offline data needed for the request is
	// not installed or could not be read. Text is empty; Reason explains.
	KindUnavailable
)

// TranslationSource records which path produced a result.
type TranslationSource string

const (
	// SourceOnline marks results from the online provider.
	SourceOnline TranslationSource = "online"
	// SourceOffline marks results from installed language packs.
	SourceOffline TranslationSource = "offline"
)

// Translation is the tagged result of a translation request. Callers must
// branch on Kind rather than inspecting Text: a placeholder or unavailable
// result is an informational message, not output to present as a translation.
type Translation struct {
	Text   string
	Kind   TranslationKind
	Source TranslationSource
	Reason string // set when Kind is KindUnavailable
}

// IsInformational reports whether the result is an offline/informational
// message rather than a genuine translation. UI layers use this to render
// a warning affordance instead of translated text.
func (t Translation) IsInformational() bool {
	return t.Kind != KindTranslated
}

// Translated builds a genuine translation result.
func Translated(text string, source TranslationSource) Translation {
	return Translation{Text: text, Kind: KindTranslated, Source: source}
}

// Placeholder builds a synthetic offline result for untranslatable input.
func Placeholder(text string) Translation {
	return Translation{Text: "[" + text + "]", Kind: KindPlaceholder, Source: SourceOffline}
}

// Unavailable builds the structured "offline data missing" result.
func Unavailable(reason string) Translation {
	return Translation{Kind: KindUnavailable, Source: SourceOffline, Reason: reason}
}
