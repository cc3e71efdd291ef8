package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/interview-scheduler/internal/application"
	"github.com/example/interview-scheduler/internal/config"
	"github.com/example/interview-scheduler/internal/logging"
)

// errRejected signals that the request was checked and refused; the reason
// has already been written to the command output.
var errRejected = errors.New("meeting request rejected")

var validOutputFormats = []string{"text", "json"}

// meetingDocument is the YAML or JSON shape of a meeting request or booking.
type meetingDocument struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Date         string   `yaml:"date"`
	Time         string   `yaml:"time"`
	Duration     any      `yaml:"duration"`
	Participants []string `yaml:"participants"`
	MeetingLink  *string  `yaml:"meeting_link"`
	Status       string   `yaml:"status"`
}

func (d meetingDocument) toInput() application.MeetingInput {
	return application.MeetingInput{
		ID:           d.ID,
		Title:        d.Title,
		Date:         d.Date,
		Time:         d.Time,
		Duration:     d.Duration,
		Participants: d.Participants,
		MeetingLink:  d.MeetingLink,
		Status:       application.MeetingStatus(d.Status),
	}
}

// toBooking converts an existing booking without applying request policy;
// past or out-of-hours bookings still occupy their slots.
func (d meetingDocument) toBooking(loc *time.Location) (application.MeetingRequest, error) {
	start, err := application.ParseMeetingStart(d.Date, d.Time, loc)
	if err != nil {
		return application.MeetingRequest{}, err
	}
	minutes, ok := application.CoerceDuration(d.Duration)
	if !ok || minutes <= 0 {
		return application.MeetingRequest{}, fmt.Errorf("invalid duration %v", d.Duration)
	}
	return application.MeetingRequest{
		ID:              d.ID,
		Title:           d.Title,
		Start:           start,
		DurationMinutes: minutes,
		Participants:    d.Participants,
		MeetingLink:     d.MeetingLink,
		Status:          application.MeetingStatus(d.Status),
	}, nil
}

type validateOptions struct {
	requestPath  string
	existingPath string
	now          string
	output       string
}

type validateResult struct {
	Accepted      bool      `json:"accepted"`
	ID            string    `json:"id,omitempty"`
	Start         time.Time `json:"start,omitzero"`
	End           time.Time `json:"end,omitzero"`
	Kind          string    `json:"kind,omitempty"`
	Message       string    `json:"message,omitempty"`
	InvalidEmails []string  `json:"invalid_emails,omitempty"`
	Conflicts     []string  `json:"conflicts,omitempty"`
}

func newRootCommand(cfg config.Config, logger *slog.Logger, now func() time.Time) *cobra.Command {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	root := &cobra.Command{
		Use:           "meetcheck",
		Short:         "Validate interview requests and detect scheduling conflicts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.AddCommand(newValidateCommand(cfg, logger, now), newPolicyCommand(cfg))
	return root
}

func newValidateCommand(cfg config.Config, logger *slog.Logger, now func() time.Time) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a meeting request against policy and existing bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validOutputFormats, opts.output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", opts.output, validOutputFormats)
			}

			clock := now
			if opts.now != "" {
				fixed, err := time.Parse(time.RFC3339, opts.now)
				if err != nil {
					return fmt.Errorf("parse --now: %w", err)
				}
				clock = func() time.Time { return fixed }
			}

			var request meetingDocument
			if err := readDocument(opts.requestPath, &request); err != nil {
				return err
			}

			policy := cfg.Policy()
			existing, err := loadBookings(opts.existingPath, policy.Location)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logging.ContextWithLogger(ctx, logger.With("command", "validate"))

			svc := application.NewMeetingServiceWithLogger(policy, uuid.NewString, clock, logger)
			accepted, checkErr := svc.Schedule(ctx, request.toInput(), existing)

			result := buildResult(accepted, checkErr)
			if err := writeResult(cmd.OutOrStdout(), opts.output, result); err != nil {
				return err
			}
			if checkErr != nil {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.requestPath, "request", "r", "", "meeting request file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.existingPath, "existing", "e", "", "existing bookings file (YAML or JSON list)")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference time in RFC3339 (defaults to the current time)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("request")

	return cmd
}

func newPolicyCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective scheduling policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy := cfg.Policy()
			doc := map[string]any{
				"timezone":          policy.Location.String(),
				"business_hours":    map[string]int{"start": policy.BusinessHours.StartHour, "end": policy.BusinessHours.EndHour},
				"allowed_durations": policy.AllowedDurations,
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode policy: %w", err)
			}
			return enc.Close()
		},
	}
}

func readDocument(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadBookings(path string, loc *time.Location) ([]application.MeetingRequest, error) {
	if path == "" {
		return nil, nil
	}
	var docs []meetingDocument
	if err := readDocument(path, &docs); err != nil {
		return nil, err
	}
	bookings := make([]application.MeetingRequest, 0, len(docs))
	for idx, doc := range docs {
		booking, err := doc.toBooking(loc)
		if err != nil {
			return nil, fmt.Errorf("existing booking %d (%s): %w", idx, doc.ID, err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func buildResult(accepted application.MeetingRequest, err error) validateResult {
	if err == nil {
		return validateResult{
			Accepted: true,
			ID:       accepted.ID,
			Start:    accepted.Start,
			End:      accepted.End(),
		}
	}

	result := validateResult{
		Kind:    application.ErrorKind(err),
		Message: application.FormatErrorMessage(err),
	}
	if tagged, ok := application.AsError(err); ok {
		result.InvalidEmails = tagged.Details.InvalidEmails
	}
	result.Conflicts = application.ConflictIDs(err)
	return result
}

func writeResult(w io.Writer, format string, result validateResult) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Accepted {
		_, err := fmt.Fprintf(w, "accepted %s (%s - %s)\n", result.ID, result.Start.Format(time.RFC3339), result.End.Format(time.RFC3339))
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "rejected: %s\n", result.Message)
	if len(result.InvalidEmails) > 0 {
		fmt.Fprintf(&b, "invalid emails: %s\n", strings.Join(result.InvalidEmails, ", "))
	}
	if len(result.Conflicts) > 0 {
		fmt.Fprintf(&b, "conflicts with: %s\n", strings.Join(result.Conflicts, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
