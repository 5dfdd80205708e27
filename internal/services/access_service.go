package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/minder/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasscodeLength = 4
	MaxPasscodeLength = 64
)

var (
	ErrInvalidPasscode    = errors.New("invalid passcode")
	ErrPasscodeMismatch   = errors.New("passcode mismatch")
	ErrPasscodeNotSet     = errors.New("passcode not set")
	ErrAccessLoadFailed   = errors.New("load passcode failed")
	ErrAccessUpdateFailed = errors.New("update passcode failed")
)

type SettingRepository interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(key string) error
}

// AccessService guards the caregiver screens with an optional passcode. With
// no passcode stored every request is allowed.
type AccessService struct {
	settings SettingRepository
}

func NewAccessService(settings SettingRepository) *AccessService {
	return &AccessService{settings: settings}
}

func ValidatePasscode(passcode string) error {
	length := utf8.RuneCountInString(passcode)
	if strings.TrimSpace(passcode) != passcode || length < MinPasscodeLength || length > MaxPasscodeLength {
		return ErrInvalidPasscode
	}
	return nil
}

func (service *AccessService) PasscodeEnabled() (bool, error) {
	hash, found, err := service.settings.Get(models.SettingCaregiverPasscodeHash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrAccessLoadFailed, err)
	}
	return found && strings.TrimSpace(hash) != "", nil
}

func (service *AccessService) SetPasscode(passcode string) error {
	if err := ValidatePasscode(passcode); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAccessUpdateFailed, err)
	}
	if err := service.settings.Set(models.SettingCaregiverPasscodeHash, string(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrAccessUpdateFailed, err)
	}
	return nil
}

func (service *AccessService) ClearPasscode() error {
	if err := service.settings.Delete(models.SettingCaregiverPasscodeHash); err != nil {
		return fmt.Errorf("%w: %v", ErrAccessUpdateFailed, err)
	}
	return nil
}

func (service *AccessService) VerifyPasscode(passcode string) error {
	hash, found, err := service.settings.Get(models.SettingCaregiverPasscodeHash)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAccessLoadFailed, err)
	}
	if !found || strings.TrimSpace(hash) == "" {
		return ErrPasscodeNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) != nil {
		return ErrPasscodeMismatch
	}
	return nil
}
