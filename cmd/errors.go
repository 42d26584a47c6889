package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/phukemrunal322-hue/cosmos-sub003/types"
	"github.com/spf13/viper"
)

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}

// reportError prints a failed command's error, as a CommandError in JSON mode.
func reportError(err error) {
	var cmdErr *types.CommandError
	if !errors.As(err, &cmdErr) {
		cmdErr = types.NewCommandError(types.ErrCodeInvalidInput, err.Error(), nil)
	}
	if isJSON() {
		_ = printJSON(os.Stderr, cmdErr)
		return
	}
	PrintError(cmdErr.Message, err)
}

// recordsError wraps a record source failure for reporting.
func recordsError(err error) error {
	return types.WrapCommandError(types.ErrCodeRecordsSource, "could not read records: "+err.Error(), err)
}

// configError wraps a configuration failure for reporting.
func configError(err error) error {
	return types.WrapCommandError(types.ErrCodeConfig, err.Error(), err)
}
