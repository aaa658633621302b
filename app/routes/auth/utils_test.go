package auth

import (
	"testing"
	"time"

	"staff-portal/app/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	branch := "kampala"
	user := &models.User{
		ID:     "user-1",
		Email:  "jane@example.com",
		Role:   models.RoleManager,
		Branch: &branch,
	}

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", claims.Email)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleManager)
	}
	if claims.Branch == nil || *claims.Branch != "kampala" {
		t.Errorf("Branch = %v, want kampala", claims.Branch)
	}
}

func TestValidateJWTNilBranchSurvivesRoundTrip(t *testing.T) {
	user := &models.User{ID: "root-1", Email: "root@example.com", Role: models.RoleSuperadmin}

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.Branch != nil {
		t.Errorf("Branch = %v, want nil", claims.Branch)
	}
}

func TestValidateJWTExpired(t *testing.T) {
	now := time.Now()
	claims := Claims{
		UserID: "user-1",
		Email:  "jane@example.com",
		Role:   models.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-25 * time.Hour)),
			Issuer:    "staff-portal",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTSecret())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateJWT(token); err != ErrTokenExpired {
		t.Fatalf("ValidateJWT error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateJWTTampered(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "jane@example.com", Role: models.RoleEmployee}
	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateJWT(tampered); err != ErrTokenInvalid {
		t.Fatalf("ValidateJWT error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateJWT(token); err != ErrTokenInvalid {
		t.Fatalf("ValidateJWT error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateJWTGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err != ErrTokenInvalid {
		t.Fatalf("ValidateJWT error = %v, want ErrTokenInvalid", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}
