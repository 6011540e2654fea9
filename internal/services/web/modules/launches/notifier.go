package launches

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/platform/timeouts"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Default pacing of outbound sentiment notifications.
const (
	DefaultNotifyRate  = rate.Limit(5)
	DefaultNotifyBurst = 10
)

// sentimentRecorder is the backend call a vote notification makes.
type sentimentRecorder interface {
	RecordSentiment(ctx context.Context, projectID string, vote launchpad.Vote) error
}

// sentimentNotifier reports votes to the backend after the response has
// been written. Failures are logged and never rolled back into the view.
type sentimentNotifier struct {
	recorder sentimentRecorder
	limiter  *rate.Limiter
	timeout  time.Duration
	log      logrus.FieldLogger
	wg       sync.WaitGroup
}

func newSentimentNotifier(recorder sentimentRecorder, limiter *rate.Limiter, log logrus.FieldLogger) *sentimentNotifier {
	if limiter == nil {
		limiter = rate.NewLimiter(DefaultNotifyRate, DefaultNotifyBurst)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &sentimentNotifier{
		recorder: recorder,
		limiter:  limiter,
		timeout:  timeouts.BackgroundMutation,
		log:      log,
	}
}

// notify sends vote for projectID on a detached context bounded by the
// notifier timeout, including time spent waiting on the limiter.
func (n *sentimentNotifier) notify(projectID string, vote launchpad.Vote) {
	if n == nil || n.recorder == nil || projectID == "" {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		fields := logrus.Fields{"project_id": projectID, "vote": string(vote)}
		if err := n.limiter.Wait(ctx); err != nil {
			n.log.WithError(err).WithFields(fields).Warn("sentiment notification dropped")
			return
		}
		if err := n.recorder.RecordSentiment(ctx, projectID, vote); err != nil {
			n.log.WithError(err).WithFields(fields).Warn("sentiment notification failed")
		}
	}()
}

// wait blocks until every pending notification has finished.
func (n *sentimentNotifier) wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

// drain waits for pending notifications until ctx ends. Notifications still
// running then are left to their own timeout.
func (n *sentimentNotifier) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain sentiment notifications: %w", ctx.Err())
	}
}
