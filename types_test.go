package golingo

import "testing"

func TestTierSpecs(t *testing.T) {
	tests := []struct {
		quality  QualityTier
		sizeMB   int
		features int
	}{
		{QualityBasic, 5, 1},
		{QualityStandard, 15, 3},
		{QualityPremium, 30, 5},
	}

	for _, tt := range tests {
		spec := tt.quality.Spec()
		if spec.SizeMB != tt.sizeMB {
			t.Errorf("%s: SizeMB = %d, want %d", tt.quality, spec.SizeMB, tt.sizeMB)
		}
		if len(spec.Features) != tt.features {
			t.Errorf("%s: %d features, want %d", tt.quality, len(spec.Features), tt.features)
		}
	}
}

func TestTierFeaturesAdditive(t *testing.T) {
	// Every tier must include the features of the tiers below it.
	ordered := []QualityTier{QualityBasic, QualityStandard, QualityPremium}

	for i := 1; i < len(ordered); i++ {
		lower := ordered[i-1].Spec().Features
		higher := make(map[string]bool)
		for _, f := range ordered[i].Spec().Features {
			higher[f] = true
		}
		for _, f := range lower {
			if !higher[f] {
				t.Errorf("%s is missing feature %q from %s", ordered[i], f, ordered[i-1])
			}
		}
	}
}

func TestQualityTier_Valid(t *testing.T) {
	if !QualityStandard.Valid() {
		t.Error("standard should be valid")
	}
	if QualityTier("ultra").Valid() {
		t.Error("unknown tier should not be valid")
	}
	if QualityTier("ultra").Spec().SizeMB != 5 {
		t.Error("unknown tier should fall back to basic spec")
	}
}

func TestTranslation_IsInformational(t *testing.T) {
	if Translated("Hola", SourceOnline).IsInformational() {
		t.Error("a genuine translation is not informational")
	}
	if !Placeholder("Good night").IsInformational() {
		t.Error("a placeholder is informational")
	}
	if !Unavailable("no packs").IsInformational() {
		t.Error("an unavailable result is informational")
	}
}

func TestPlaceholder_Tagged(t *testing.T) {
	result := Placeholder("Good night")

	if result.Kind != KindPlaceholder {
		t.Errorf("Kind = %v, want KindPlaceholder", result.Kind)
	}
	// The text is visibly marked so it can never pass as a real translation.
	if result.Text != "[Good night]" {
		t.Errorf("Text = %q, want bracketed original", result.Text)
	}
}

func TestUnavailable_CarriesReason(t *testing.T) {
	result := Unavailable("the German language pack is not downloaded")

	if result.Kind != KindUnavailable {
		t.Errorf("Kind = %v, want KindUnavailable", result.Kind)
	}
	if result.Text != "" {
		t.Errorf("Text should be empty, got %q", result.Text)
	}
	if result.Reason == "" {
		t.Error("Reason must explain the unavailability")
	}
}
