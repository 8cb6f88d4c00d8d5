package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

func TestGenerateMintAddress(t *testing.T) {
	addr, err := GenerateMintAddress()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsValidMintAddress(addr) {
		t.Fatalf("generated address not valid: %s", addr)
	}

	other, err := GenerateMintAddress()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr == other {
		t.Fatal("expected distinct mint addresses")
	}
}

func TestIsValidMintAddress(t *testing.T) {
	if IsValidMintAddress("not-base58-0OIl") {
		t.Fatal("expected invalid for non-base58 input")
	}

	short := base58.Encode([]byte{1, 2, 3})
	if IsValidMintAddress(short) {
		t.Fatal("expected invalid for short payload")
	}
}

func TestGenerateUUIDv7(t *testing.T) {
	id, err := GenerateUUIDv7()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}

	other, err := GenerateUUIDv7()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == other {
		t.Fatal("expected distinct uuids")
	}
}
