package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/minder/internal/db"
	"github.com/terraincognita07/minder/internal/security"
	"github.com/terraincognita07/minder/internal/services"
)

const generatedPasscodeDigits = 6

var errPasscodeConfirmation = errors.New("passcodes do not match")

// RunSetPasscodeCommand stores a caregiver passcode. With a nil prompt a
// numeric passcode is generated and printed once.
func RunSetPasscodeCommand(dbPath string, prompt PasscodePrompt, out io.Writer) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	access := services.NewAccessService(db.NewRepositories(database).Settings)

	passcode, generated, err := choosePasscode(prompt)
	if err != nil {
		return err
	}
	if err := access.SetPasscode(passcode); err != nil {
		if errors.Is(err, services.ErrInvalidPasscode) {
			return fmt.Errorf("passcode must be %d-%d characters without surrounding spaces", services.MinPasscodeLength, services.MaxPasscodeLength)
		}
		return fmt.Errorf("store passcode: %w", err)
	}

	fmt.Fprintln(out, "Caregiver passcode updated.")
	if generated {
		fmt.Fprintf(out, "Passcode: %s\n", passcode)
	}
	return nil
}

func choosePasscode(prompt PasscodePrompt) (string, bool, error) {
	if prompt == nil {
		passcode, err := security.NewPasscode(generatedPasscodeDigits)
		if err != nil {
			return "", false, fmt.Errorf("generate passcode: %w", err)
		}
		return passcode, true, nil
	}

	first, err := prompt("New passcode: ")
	if err != nil {
		return "", false, err
	}
	second, err := prompt("Repeat passcode: ")
	if err != nil {
		return "", false, err
	}
	if first != second {
		return "", false, errPasscodeConfirmation
	}
	return first, false, nil
}

func RunClearPasscodeCommand(dbPath string, out io.Writer) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	access := services.NewAccessService(db.NewRepositories(database).Settings)
	if err := access.ClearPasscode(); err != nil {
		return fmt.Errorf("clear passcode: %w", err)
	}
	fmt.Fprintln(out, "Caregiver passcode removed. Caregiver screens are open.")
	return nil
}
