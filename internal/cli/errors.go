package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/cashdrawer/internal/drawer"
	"github.com/roach88/cashdrawer/internal/store"
)

// notice is the user-facing form of an error.
type notice struct {
	Code    string
	Exit    int
	Message string
	Details interface{}
}

// classify maps err onto a notice. action names what was being attempted,
// e.g. "save the shift".
func classify(action string, err error) notice {
	var verr *drawer.ValidationError
	switch {
	case errors.Is(err, store.ErrStorageUnavailable):
		return notice{
			Code:    CodeStorage,
			Exit:    ExitCommandError,
			Message: fmt.Sprintf("Failed to %s. Please try again.", action),
			Details: err.Error(),
		}
	case errors.As(err, &verr):
		return notice{
			Code:    CodeValidation,
			Exit:    ExitFailure,
			Message: validationMessage(verr),
			Details: verr.Fields,
		}
	case errors.Is(err, drawer.ErrValidation):
		return notice{Code: CodeValidation, Exit: ExitFailure, Message: err.Error()}
	case errors.Is(err, drawer.ErrShiftAlreadyOpen):
		return notice{
			Code:    CodeConflict,
			Exit:    ExitFailure,
			Message: "A shift is already open. End it before starting a new one.",
		}
	case errors.Is(err, drawer.ErrNoOpenShift):
		return notice{
			Code:    CodeConflict,
			Exit:    ExitFailure,
			Message: "No open shift. Start a shift first.",
		}
	case errors.Is(err, drawer.ErrNotFound):
		return notice{Code: CodeNotFound, Exit: ExitFailure, Message: err.Error()}
	default:
		return notice{Code: CodeInvalidArgs, Exit: ExitFailure, Message: err.Error()}
	}
}

func validationMessage(verr *drawer.ValidationError) string {
	var missing, other []string
	for _, f := range verr.Fields {
		if f.Rule == "required" {
			missing = append(missing, f.Field)
			continue
		}
		other = append(other, fmt.Sprintf("%s is %s", f.Field, f.Rule))
	}
	if len(missing) == 2 {
		other = append([]string{"Please enter both " + strings.Join(missing, " and ")}, other...)
	} else if len(missing) > 0 {
		other = append([]string{"Please enter " + strings.Join(missing, ", ")}, other...)
	}
	if len(other) == 0 {
		return verr.Error()
	}
	return strings.Join(other, "; ")
}

// report writes the notice for err and logs it. Storage failures log at
// error level; refusals log at debug.
func report(f *OutputFormatter, logger *slog.Logger, action string, err error) notice {
	n := classify(action, err)
	if n.Code == CodeStorage {
		logger.Error(action+" failed", "error", err)
	} else {
		logger.Debug(action+" refused", "code", n.Code, "error", err)
	}
	_ = f.Error(n.Code, n.Message, n.Details)
	return n
}

// fail reports err and returns the ExitError for the command.
func (o *RootOptions) fail(f *OutputFormatter, action string, err error) error {
	n := report(f, o.log(), action, err)
	exitErr := WrapExitError(n.Exit, n.Message, err)
	exitErr.Reported = true
	return exitErr
}

func (o *RootOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}
