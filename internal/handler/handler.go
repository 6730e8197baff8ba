package handler

import (
	"errors"

	"github.com/tmpllang/compiler/internal/loc"
)

// Handler accumulates diagnostics during a Parse/Analyze pass rather than
// aborting on the first error, following an accumulate-then-report
// policy.
type Handler struct {
	filename string
	locator  *loc.Locator
	errors   []error
	warnings []error
	infos    []error
	hints    []error
}

func NewHandler(sourcetext string, filename string) *Handler {
	return &Handler{
		filename: filename,
		locator:  loc.NewLocator(filename, sourcetext),
		errors:   make([]error, 0),
		warnings: make([]error, 0),
		infos:    make([]error, 0),
		hints:    make([]error, 0),
	}
}

func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}

func (h *Handler) AppendError(err error) {
	h.errors = append(h.errors, err)
}

func (h *Handler) AppendWarning(err error) {
	h.warnings = append(h.warnings, err)
}

func (h *Handler) AppendInfo(err error) {
	h.infos = append(h.infos, err)
}

func (h *Handler) AppendHint(err error) {
	h.hints = append(h.hints, err)
}

func (h *Handler) Errors() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0)
	for _, err := range h.errors {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.ErrorType, err))
		}
	}
	return msgs
}

func (h *Handler) Warnings() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0)
	for _, err := range h.warnings {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.WarningType, err))
		}
	}
	return msgs
}

func (h *Handler) Diagnostics() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0)
	for _, err := range h.errors {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.ErrorType, err))
		}
	}
	for _, err := range h.warnings {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.WarningType, err))
		}
	}
	for _, err := range h.infos {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.InformationType, err))
		}
	}
	for _, err := range h.hints {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.HintType, err))
		}
	}
	return msgs
}

// ErrorToMessage resolves a raw error into a DiagnosticMessage, looking up
// a line/column via the handler's Locator when the error carries a Range.
func ErrorToMessage(h *Handler, severity loc.DiagnosticSeverity, err error) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	switch {
	case errors.As(err, &rangedError):
		location := h.locator.Locate(rangedError.Range)
		message := rangedError.ToMessage(&location)
		message.Severity = severity
		return message
	default:
		return loc.DiagnosticMessage{Text: err.Error(), Severity: severity}
	}
}
