// Package alert delivers due reminders: a desktop notification per task and
// one ringtone per batch.
package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/hy4ri/todo-reminder/internal/reminder"
	"github.com/rs/zerolog"
)

// Notifier shows a message outside the application.
type Notifier interface {
	Notify(title, message string) error
}

// Sounder plays an audible alert.
type Sounder interface {
	Play(ctx context.Context) error
}

// DesktopNotifier sends notifications through the OS notification service.
type DesktopNotifier struct{}

// Notify implements Notifier.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Alerter fans a batch of due reminders out to a notifier and a sounder.
// Either may be nil.
type Alerter struct {
	notifier Notifier
	sounder  Sounder
	log      zerolog.Logger
}

// New creates an Alerter.
func New(notifier Notifier, sounder Sounder, logger zerolog.Logger) *Alerter {
	return &Alerter{
		notifier: notifier,
		sounder:  sounder,
		log:      logger.With().Str("component", "alert").Logger(),
	}
}

// Message is the text shown for a due task.
func Message(d reminder.Due) string {
	return fmt.Sprintf("Reminder for task: '%s' is due now!", d.Text)
}

// Fire notifies once per due task and plays the ringtone once.
// All failures are non-fatal and returned joined.
func (a *Alerter) Fire(ctx context.Context, dues []reminder.Due) error {
	if len(dues) == 0 {
		return nil
	}

	var errs []error
	if a.notifier != nil {
		for _, d := range dues {
			if err := a.notifier.Notify("Reminder", Message(d)); err != nil {
				a.log.Warn().Err(err).Str("task", d.Text).Msg("failed to send notification")
				errs = append(errs, fmt.Errorf("notification failed: %w", err))
			}
		}
	}

	if a.sounder != nil {
		err := a.sounder.Play(ctx)
		switch {
		case errors.Is(err, ErrBusy):
			a.log.Info().Int("due", len(dues)).Msg("ringtone still playing, skipped")
		case err != nil:
			a.log.Warn().Err(err).Msg("playback failed")
			errs = append(errs, fmt.Errorf("playback failed: %w", err))
		}
	}

	return errors.Join(errs...)
}
