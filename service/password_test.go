// file: service/password_test.go

package service

import (
	"testing"
)

// TestHashAndCheckPassword ensures that password hashing and verification work correctly.
func TestHashAndCheckPassword(t *testing.T) {
	password := "mySecretPassword123"

	// 1. Test Hashing
	hashedPassword, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	// 2. Test Successful Verification
	match := CheckPasswordHash(password, hashedPassword)
	if !match {
		t.Errorf("CheckPasswordHash() should have returned true for a matching password, but got false.")
	}

	// 3. Test Failed Verification
	wrongPassword := "notMyPassword"
	match = CheckPasswordHash(wrongPassword, hashedPassword)
	if match {
		t.Errorf("CheckPasswordHash() should have returned false for a non-matching password, but got true.")
	}
}

// TestHashPassword_Salting ensures two hashes of the same password differ
// but both verify against the original input.
func TestHashPassword_Salting(t *testing.T) {
	password := "samePasswordTwice"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() returned an unexpected error: %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() returned an unexpected error: %v", err)
	}

	if first == second {
		t.Errorf("Two hashes of the same password should differ due to random salting.")
	}
	if !CheckPasswordHash(password, first) || !CheckPasswordHash(password, second) {
		t.Errorf("Both hashes should verify against the original password.")
	}
}

// TestCheckPasswordHash_MalformedHash ensures a garbage hash verifies as
// false instead of panicking or erroring out.
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	if CheckPasswordHash("anyPassword", "not-a-bcrypt-hash") {
		t.Errorf("CheckPasswordHash() should return false for a malformed hash.")
	}
	if CheckPasswordHash("anyPassword", "") {
		t.Errorf("CheckPasswordHash() should return false for an empty hash.")
	}
}
