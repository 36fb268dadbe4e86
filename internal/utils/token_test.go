package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAdminToken(t *testing.T) {
	access, err := NewAdminToken("secret", 5)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if access.Token == "" {
		t.Fatal("empty token")
	}
	if !access.Exp.After(time.Now()) {
		t.Errorf("exp %v is not in the future", access.Exp)
	}

	tok, err := jwt.Parse(access.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != AdminRole || claims["sub"] != "admin" {
		t.Errorf("claims = %v", claims)
	}
}

func TestHashVerifyPIN(t *testing.T) {
	hash, err := HashPIN("4321", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPIN(hash, "4321") {
		t.Error("correct PIN rejected")
	}
	if VerifyPIN(hash, "0000") {
		t.Error("wrong PIN accepted")
	}
}
