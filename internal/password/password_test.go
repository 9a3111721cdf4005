package password

import "testing"

func ptr(s string) *string { return &s }

func TestEncode_KnownValue(t *testing.T) {
	// "123456" XOR 0xFF = ce cd cc cb ca c9
	got := Encode(ptr("123456"))
	if got == nil {
		t.Fatal("Encode() returned nil")
	}
	if *got != "zs3My8rJ" {
		t.Errorf("Encode() = %q, want %q", *got, "zs3My8rJ")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"123456",
		"P@ssw0rd!",
		"with spaces and ~ tildes",
		"\x00\x01\x7f",
	}

	for _, in := range inputs {
		encoded := Encode(ptr(in))
		if encoded == nil {
			t.Fatalf("Encode(%q) returned nil", in)
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", *encoded, err)
		}
		if decoded == nil || *decoded != in {
			t.Errorf("round trip of %q gave %v", in, decoded)
		}
	}
}

func TestNil(t *testing.T) {
	if got := Encode(nil); got != nil {
		t.Errorf("Encode(nil) = %q, want nil", *got)
	}
	got, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) error = %v", err)
	}
	if got != nil {
		t.Errorf("Decode(nil) = %q, want nil", *got)
	}
}

func TestDecode_InvalidBase64(t *testing.T) {
	if _, err := Decode(ptr("not base64!")); err == nil {
		t.Error("expected error for invalid base64")
	}
}
