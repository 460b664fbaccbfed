package notify

import (
	"context"
	"log"

	"library-lending/internal/domain"
)

// OverdueSource supplies the users who currently hold overdue media.
type OverdueSource interface {
	UsersWithOverdueMedia(ctx context.Context) ([]*domain.OverdueUser, error)
}

// Notifier delivers one overdue reminder. Actual transport (SMTP etc.) lives
// behind this interface and is configured by the caller.
type Notifier interface {
	NotifyOverdue(ctx context.Context, user *domain.OverdueUser) error
}

// LogNotifier writes reminders to the process log. It stands in wherever a
// real mail transport is not configured.
type LogNotifier struct{}

func (LogNotifier) NotifyOverdue(_ context.Context, user *domain.OverdueUser) error {
	log.Printf("reminder: user %s <%s> has %d overdue item(s)", user.Username, user.Email, user.OverdueCount)
	return nil
}

// SendReminders pushes one notification per user with overdue media. Delivery
// failures are logged and skipped so one bad address does not stop the run;
// the count of successful notifications is returned.
func SendReminders(ctx context.Context, src OverdueSource, notifier Notifier) (int, error) {
	users, err := src.UsersWithOverdueMedia(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, user := range users {
		if err := notifier.NotifyOverdue(ctx, user); err != nil {
			log.Printf("reminder: notify user %d failed: %v", user.UserID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
