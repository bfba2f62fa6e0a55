package utils

import "testing"

func TestSnowflake(t *testing.T) {
	sf, err := NewSnowflake(1)
	if err != nil {
		t.Fatalf("NewSnowflake failed: %v", err)
	}

	t.Run("ids are unique and increasing", func(t *testing.T) {
		prev := int64(0)
		for i := 0; i < 1000; i++ {
			id := sf.GenerateID()
			if id <= prev {
				t.Fatalf("id %d not greater than previous %d", id, prev)
			}
			prev = id
		}
	})

	t.Run("worker id out of range", func(t *testing.T) {
		if _, err := NewSnowflake(1024); err == nil {
			t.Error("expected error for worker id 1024")
		}
		if _, err := NewSnowflake(-1); err == nil {
			t.Error("expected error for negative worker id")
		}
	})
}

func TestCrypt(t *testing.T) {
	hashed, err := Crypt("secret123")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if !VerifyPassword("secret123", hashed) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hashed) {
		t.Error("wrong password accepted")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "dancer.01@kizomba.io"}
	invalid := []string{"", "not-an-email", "a@b", "@b.com"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestUsernameFromEmail(t *testing.T) {
	if got := UsernameFromEmail("dancer@kizomba.io"); got != "dancer" {
		t.Errorf("expected dancer, got %s", got)
	}
}
