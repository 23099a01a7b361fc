package middleware

import (
	"testing"
	"time"

	"timesheet/models"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	engineer := &models.Engineer{
		ID:       42,
		Username: "jdoe",
		Role:     models.RoleEngineer,
	}
	engineer.FullName = "Jane Doe"

	token, err := GenerateToken(engineer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.EngineerID != 42 || claims.Username != "jdoe" || claims.Role != models.RoleEngineer {
		t.Errorf("claims = %+v, want engineer 42/jdoe/ENGINEER", claims)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	engineer := &models.Engineer{ID: 1, Username: "jdoe", Role: models.RoleEngineer}
	token, err := GenerateToken(engineer, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken accepted an expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	engineer := &models.Engineer{ID: 1, Username: "jdoe", Role: models.RoleEngineer}
	token, err := GenerateToken(engineer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetJWTSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken accepted a token signed with a different secret")
	}
}
