package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !VerifyPassword("hunter2", hash) {
		t.Fatal("correct password did not verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ; compare only via VerifyPassword")
	}
	if !VerifyPassword("same-input", h1) || !VerifyPassword("same-input", h2) {
		t.Fatal("both salted hashes should verify")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must fail verification")
	}
	if VerifyPassword("anything", "") {
		t.Fatal("empty hash must fail verification")
	}
}
