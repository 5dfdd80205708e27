package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/minder/internal/db"
	"github.com/terraincognita07/minder/internal/services"
)

// RunReconcileCommand performs the same catch-up the app does on open.
func RunReconcileCommand(dbPath string, location *time.Location, policyName string, now time.Time, out io.Writer) error {
	policy, err := services.BackfillPolicyByName(policyName)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repositories := db.NewRepositories(database)
	reconciler := services.NewReconciliationService(
		repositories.MedicationLogs,
		repositories.Settings,
		repositories.Medications,
		policy,
		location,
	)

	result, err := reconciler.RunIfNeeded(now)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	if !result.Ran {
		fmt.Fprintln(out, "Already reconciled today.")
		return nil
	}
	fmt.Fprintf(out, "Reconciled %s: %d missed dose(s) recorded.\n", strings.Join(result.Days, ", "), result.Created)
	return nil
}
