package utils

import "testing"

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret-passw0rd" {
		t.Fatal("hash equals plaintext")
	}
	if !ComparePassword(hash, "s3cret-passw0rd") {
		t.Error("correct password rejected")
	}
	if ComparePassword(hash, "wrong-password") {
		t.Error("wrong password accepted")
	}
}
