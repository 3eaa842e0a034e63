package hash

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "typical password", password: "SecurePass123!", wantErr: false},
		{name: "single character", password: "x", wantErr: false},
		{name: "empty password", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Hash(tt.password)

			if tt.wantErr {
				if err == nil {
					t.Error("Hash() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Hash() unexpected error = %v", err)
			}

			if h == tt.password {
				t.Error("Hash() returned unhashed password")
			}

			if !strings.HasPrefix(h, "$2a$12$") {
				t.Errorf("Hash() unexpected bcrypt format: %s", h[:10])
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	password := "SamePassword123!"

	hash1, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	hash2, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for the same password")
	}
}

func TestCompare(t *testing.T) {
	password := "MySecurePassword123!"
	h, err := Hash(password)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	if err := Compare(h, password); err != nil {
		t.Errorf("Compare() rejected correct password: %v", err)
	}

	if err := Compare(h, "WrongPassword"); err == nil {
		t.Error("Compare() accepted wrong password")
	}

	if err := Compare(h, strings.ToUpper(password)); err == nil {
		t.Error("Compare() is not case sensitive")
	}
}
