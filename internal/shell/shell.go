package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hackgods/hospital-booking-ledger/internal/appointment"
	"github.com/hackgods/hospital-booking-ledger/internal/config"
)

var (
	errExit        = errors.New("exit requested")
	errInputClosed = errors.New("input closed")
)

// Shell is the text menu in front of the booking ledger. It reads one option
// at a time from in and writes everything the user sees to out.
type Shell struct {
	svc      *appointment.Service
	cfg      config.Config
	in       *bufio.Reader
	out      io.Writer
	log      *zap.Logger
	validate *validator.Validate
	options  []option
}

func New(svc *appointment.Service, cfg config.Config, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	s := &Shell{
		svc:      svc,
		cfg:      cfg,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		validate: validator.New(),
	}

	s.options = []option{
		{key: "1", label: "Register a Patient", handle: s.registerPatient},
		{key: "2", label: "Add a Doctor", handle: s.addDoctor},
		{key: "3", label: "Book an Appointment", handle: s.bookAppointment},
		{key: "4", label: "View the Patient Schedule", handle: s.viewAppointments},
		{key: "5", label: "Cancel an Appointment", handle: s.cancelAppointment},
		{key: "6", label: "View your Bill Total", handle: s.generateBill},
		{key: "7", label: "Exit", handle: s.exit},
	}
	for i, o := range s.options {
		s.options[i].handle = withCommandID(withLogging(log, o.key, o.handle))
	}

	return s
}

// Run loops until the user picks Exit, the input ends or ctx is cancelled.
// Errors from individual commands are reported to the user and never end the
// loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.prompt("Select an option to Proceed:")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}

		opt, ok := s.lookup(choice)
		if !ok {
			s.println("Invalid Selection. Please try again.")
			continue
		}

		err = opt.handle(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, errInputClosed):
			return nil
		default:
			s.handleError(err)
		}
	}
}

func (s *Shell) printMenu() {
	s.printf("\n=========== %s Management System ================\n", s.cfg.HospitalName)
	for _, o := range s.options {
		s.printf("%s. %s\n", o.key, o.label)
	}
}

func (s *Shell) lookup(key string) (option, bool) {
	for _, o := range s.options {
		if o.key == key {
			return o, true
		}
	}
	return option{}, false
}

// prompt writes label and returns the next input line with surrounding
// whitespace removed. Lines have no length limit. A final line without a
// trailing newline is still returned.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// prompts asks each label in turn and stops at the first read error.
func (s *Shell) prompts(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, l := range labels {
		a, err := s.prompt(l)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
