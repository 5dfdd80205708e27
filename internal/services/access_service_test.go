package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/minder/internal/models"
)

func TestAccessServicePasscodeLifecycle(t *testing.T) {
	settings := newSettingRepositoryStub()
	service := NewAccessService(settings)

	enabled, err := service.PasscodeEnabled()
	if err != nil || enabled {
		t.Fatalf("expected passcode disabled initially, enabled=%v err=%v", enabled, err)
	}
	if err := service.VerifyPasscode("1234"); !errors.Is(err, ErrPasscodeNotSet) {
		t.Fatalf("expected ErrPasscodeNotSet, got %v", err)
	}

	if err := service.SetPasscode("2468"); err != nil {
		t.Fatalf("SetPasscode() unexpected error: %v", err)
	}
	if settings.values[models.SettingCaregiverPasscodeHash] == "2468" {
		t.Fatal("expected passcode stored as hash")
	}
	if err := service.VerifyPasscode("2468"); err != nil {
		t.Fatalf("VerifyPasscode() unexpected error: %v", err)
	}
	if err := service.VerifyPasscode("1357"); !errors.Is(err, ErrPasscodeMismatch) {
		t.Fatalf("expected ErrPasscodeMismatch, got %v", err)
	}

	if err := service.ClearPasscode(); err != nil {
		t.Fatalf("ClearPasscode() unexpected error: %v", err)
	}
	enabled, err = service.PasscodeEnabled()
	if err != nil || enabled {
		t.Fatalf("expected passcode disabled after clear, enabled=%v err=%v", enabled, err)
	}
}

func TestValidatePasscode(t *testing.T) {
	for _, passcode := range []string{"", "123", " 1234", "1234 "} {
		if err := ValidatePasscode(passcode); !errors.Is(err, ErrInvalidPasscode) {
			t.Fatalf("ValidatePasscode(%q) expected ErrInvalidPasscode, got %v", passcode, err)
		}
	}
	if err := ValidatePasscode("1234"); err != nil {
		t.Fatalf("ValidatePasscode() unexpected error: %v", err)
	}
}

func TestSetPasscodeWrapsStorageError(t *testing.T) {
	settings := newSettingRepositoryStub()
	settings.setErr = errors.New("readonly")
	service := NewAccessService(settings)
	if err := service.SetPasscode("2468"); !errors.Is(err, ErrAccessUpdateFailed) {
		t.Fatalf("expected ErrAccessUpdateFailed, got %v", err)
	}
}
