package xca954x

import "testing"

func TestVariantDescriptors(t *testing.T) {
	tests := []struct {
		variant    Variant
		name       string
		channels   int
		validMask  uint8
		interrupts bool
	}{
		{TCA9548A, "TCA9548A", 8, 0xFF, false},
		{PCA9548A, "PCA9548A", 8, 0xFF, false},
		{TCA9546A, "TCA9546A", 4, 0x0F, false},
		{XCA9545A, "XCA9545A", 4, 0x0F, true},
		{XCA9543A, "XCA9543A", 2, 0x03, true},
	}

	for _, tt := range tests {
		if tt.variant.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.variant.String(), tt.name)
		}
		if tt.variant.Channels() != tt.channels {
			t.Errorf("%s: Channels() = %d, want %d", tt.name, tt.variant.Channels(), tt.channels)
		}
		if tt.variant.ValidMask() != tt.validMask {
			t.Errorf("%s: ValidMask() = %#02x, want %#02x", tt.name, tt.variant.ValidMask(), tt.validMask)
		}
		if tt.variant.HasInterrupts() != tt.interrupts {
			t.Errorf("%s: HasInterrupts() = %v, want %v", tt.name, tt.variant.HasInterrupts(), tt.interrupts)
		}
	}
}

func TestLookupVariant(t *testing.T) {
	v, ok := LookupVariant("tca9548a")
	if !ok || v != TCA9548A {
		t.Fatalf("LookupVariant(tca9548a) = (%v, %v)", v, ok)
	}
	v, ok = LookupVariant("XCA9543A")
	if !ok || v != XCA9543A {
		t.Fatalf("LookupVariant(XCA9543A) = (%v, %v)", v, ok)
	}
	if _, ok := LookupVariant("pca9999"); ok {
		t.Fatal("LookupVariant(pca9999) unexpectedly succeeded")
	}
}
