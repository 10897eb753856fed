package admin

import (
	"context"
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/domain"
)

// FeedbackService reads submitted feedback. Feedback is read-only.
type FeedbackService interface {
	List(ctx context.Context) ([]domain.Feedback, error)
}

type RemoteFeedback struct {
	t Transport
}

func NewRemoteFeedback(t Transport) *RemoteFeedback {
	return &RemoteFeedback{t: t}
}

func (f *RemoteFeedback) List(ctx context.Context) ([]domain.Feedback, error) {
	var out []domain.Feedback
	if err := f.t.List(ctx, FeedbackPath, &out); err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	return out, nil
}

// DescribeFeedback renders one feedback entry as
// "college - program: content (Rating: n)".
func DescribeFeedback(f domain.Feedback) string {
	rating := domain.CoalesceStr(f.Rating.String(), "-")
	return fmt.Sprintf("%s - %s: %s (Rating: %s)", f.College, f.Program, f.Content, rating)
}
