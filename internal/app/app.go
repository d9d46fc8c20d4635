package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/EpicMandM/passgen/internal/logger"
	"github.com/EpicMandM/passgen/internal/models"
	"github.com/EpicMandM/passgen/internal/service"
	"github.com/google/uuid"
)

// ErrNothingToCopy is returned by Copy while no password is displayed.
var ErrNothingToCopy = errors.New("no password to copy")

const (
	titleInputError   = "Input Error"
	titleInputWarning = "Input Warning"
	titleError        = "Error"

	msgLongPassword = "Password length is very long. Consider a shorter, strong password."
)

// Generator produces a password of the requested length.
type Generator interface {
	Generate(length int) (string, error)
}

// Clipboard receives text the user asked to copy.
type Clipboard interface {
	Copy(text string) error
}

// Notifier shows messages to the user, e.g. as dialogs or terminal lines.
type Notifier interface {
	Error(title, message string)
	Warning(title, message string)
}

type nopNotifier struct{}

func (nopNotifier) Error(string, string)   {}
func (nopNotifier) Warning(string, string) {}

// Session holds what a password generator front end displays: the current
// password and whether the copy action is available. It is not safe for
// concurrent use.
type Session struct {
	generator   Generator
	clipboard   Clipboard
	notifier    Notifier
	logger      *logger.Logger
	softCeiling int

	displayed   string
	copyEnabled bool

	now   func() time.Time
	newID func() string
}

// New creates a session. A nil notifier or logger discards output and a
// non-positive softCeiling selects service.SoftCeiling.
func New(gen Generator, clip Clipboard, notifier Notifier, log *logger.Logger, softCeiling int) *Session {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = logger.NewWithWriter(io.Discard)
	}
	if softCeiling <= 0 {
		softCeiling = service.SoftCeiling
	}
	return &Session{
		generator:   gen,
		clipboard:   clip,
		notifier:    notifier,
		logger:      log,
		softCeiling: softCeiling,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// ParseLength converts raw user input into a length. Unparsable input is
// reported as a *service.ValidationError, the same as a non-positive length.
func ParseLength(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &service.ValidationError{Reason: "please enter a password length"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &service.ValidationError{Reason: "invalid input: enter a number for length"}
	}
	return n, nil
}

// Generate parses raw and generates a password from it.
func (s *Session) Generate(raw string) (*models.Generation, error) {
	length, err := ParseLength(raw)
	if err != nil {
		s.fail(s.newID(), err)
		return nil, err
	}
	return s.GenerateLength(length)
}

// GenerateLength generates a password of length characters and displays it.
// Lengths above the soft ceiling raise a warning but still succeed.
func (s *Session) GenerateLength(length int) (*models.Generation, error) {
	return s.generate(length, true)
}

// GenerateBatch generates count passwords of the same length. The soft
// ceiling warning is raised at most once for the whole batch; the last
// password is left displayed.
func (s *Session) GenerateBatch(length, count int) ([]models.Generation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	gens := make([]models.Generation, 0, count)
	for i := 0; i < count; i++ {
		g, err := s.generate(length, i == 0)
		if err != nil {
			return nil, err
		}
		gens = append(gens, *g)
	}
	return gens, nil
}

func (s *Session) generate(length int, warn bool) (*models.Generation, error) {
	id := s.newID()

	password, err := s.generator.Generate(length)
	if err != nil {
		s.fail(id, err)
		return nil, err
	}

	advisory := s.IsUnusuallyLong(length)
	if advisory && warn {
		s.notifier.Warning(titleInputWarning, msgLongPassword)
		s.logger.Warn("Unusually long password requested",
			logger.RequestID(id), logger.Length(length), logger.Ceiling(s.softCeiling))
	}

	s.displayed = password
	s.copyEnabled = true
	s.logger.Info("Password generated",
		logger.Action("generate"), logger.Status("success"), logger.RequestID(id), logger.Length(length))

	return &models.Generation{
		ID:        id,
		Password:  password,
		Length:    length,
		Advisory:  advisory,
		CreatedAt: s.now(),
	}, nil
}

func (s *Session) fail(id string, err error) {
	s.displayed = ""
	s.copyEnabled = false

	if service.IsValidation(err) {
		s.notifier.Error(titleInputError, err.Error())
		s.logger.Warn("Rejected password request",
			logger.Action("generate"), logger.Status("invalid"), logger.RequestID(id), logger.Reason(err.Error()))
		return
	}
	s.notifier.Error(titleError, fmt.Sprintf("An unexpected error occurred: %v", err))
	s.logger.Error("Password generation failed",
		logger.Action("generate"), logger.Status("failed"), logger.RequestID(id), logger.Error(err))
}

// Copy places the displayed password on the clipboard.
func (s *Session) Copy() error {
	if !s.copyEnabled || s.displayed == "" {
		return ErrNothingToCopy
	}
	if s.clipboard == nil {
		return fmt.Errorf("clipboard not available")
	}
	if err := s.clipboard.Copy(s.displayed); err != nil {
		s.logger.Error("Failed to copy password", logger.Action("copy"), logger.Error(err))
		return fmt.Errorf("failed to copy password: %w", err)
	}
	s.logger.Info("Password copied", logger.Action("copy"), logger.Status("success"), logger.Length(len(s.displayed)))
	return nil
}

// IsUnusuallyLong reports whether length exceeds the session's soft ceiling.
func (s *Session) IsUnusuallyLong(length int) bool {
	return length > s.softCeiling
}

// Displayed returns the password currently shown, or "".
func (s *Session) Displayed() string {
	return s.displayed
}

// CopyEnabled reports whether a password is displayed and may be copied.
func (s *Session) CopyEnabled() bool {
	return s.copyEnabled
}
