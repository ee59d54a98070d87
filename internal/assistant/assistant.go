// Package assistant answers chat messages about a user's finances.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/shalconnects/balanze-go/internal/aggregator"
	"github.com/shalconnects/balanze-go/internal/analytics"
	"github.com/shalconnects/balanze-go/internal/daterange"
	"github.com/shalconnects/balanze-go/internal/intent"
	"github.com/shalconnects/balanze-go/internal/types"
	"github.com/shalconnects/balanze-go/pkg/balanze"
)

const (
	// GenerationFailed replaces an answer whose handler panicked
	GenerationFailed = "I apologize, but I encountered an error processing your question. Please try rephrasing it."

	// EmptyResponse replaces an answer that came back blank
	EmptyResponse = "I apologize, but I couldn't generate a proper response. Please try again."

	logPreviewLen = 50
)

// Clock returns the current time
type Clock func() time.Time

// Options configures an Assistant
type Options struct {
	Logger types.Logger

	// Clock overrides time.Now, e.g. to replay fixtures on a fixed date
	Clock Clock

	// Location places date-only records and calendar months; defaults to UTC
	Location *time.Location

	// Classifier overrides the default rule table
	Classifier *intent.Classifier
}

// Assistant is safe for concurrent use; it keeps no per-user state
type Assistant struct {
	aggregator *aggregator.Aggregator
	classifier *intent.Classifier
	logger     types.Logger
	clock      Clock
	location   *time.Location
}

// Reply is an answer together with the rule that produced it
type Reply struct {
	Intent   intent.Intent
	Response string
	Context  *analytics.Context
}

// New creates an Assistant reading from store
func New(store balanze.Store, opts *Options) *Assistant {
	if opts == nil {
		opts = &Options{}
	}

	a := &Assistant{
		aggregator: aggregator.New(store, opts.Logger),
		classifier: opts.Classifier,
		logger:     types.OrNop(opts.Logger),
		clock:      opts.Clock,
		location:   opts.Location,
	}
	if a.classifier == nil {
		a.classifier = intent.NewClassifier()
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if a.location == nil {
		a.location = time.UTC
	}
	return a
}

// Respond answers message for userID. It always returns a non-empty string.
func (a *Assistant) Respond(ctx context.Context, userID, message string) string {
	return a.Ask(ctx, userID, message).Response
}

// Ask answers message for userID and reports which intent handled it.
// The wall clock is read once so every figure shares the same now.
func (a *Assistant) Ask(ctx context.Context, userID, message string) Reply {
	now := a.clock().In(a.location)

	a.logger.Info("Processing chat request", "message", preview(message), "userId", userID)

	financial := a.aggregator.Aggregate(ctx, userID, now)
	reply := a.generate(ctx, userID, message, financial)

	if strings.TrimSpace(reply.Response) == "" {
		a.logger.Error("Invalid response generated", "userId", userID, "intent", reply.Intent)
		reply.Response = EmptyResponse
	}
	return reply
}

// Summary returns the Context for userID without answering a question
func (a *Assistant) Summary(ctx context.Context, userID string) *analytics.Context {
	return a.aggregator.Aggregate(ctx, userID, a.clock().In(a.location))
}

func (a *Assistant) generate(ctx context.Context, userID, message string, financial *analytics.Context) (reply Reply) {
	reply.Context = financial

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("response generation panic: %v", r)
			a.logger.Error("Error generating response", "userId", userID, "error", err)
			captureException(ctx, err, userID, reply.Intent)
			reply.Response = GenerationFailed
		}
	}()

	window := daterange.Resolve(message, financial.Now)
	reply.Intent, reply.Response = a.classifier.Respond(intent.NewQuery(message, financial, window))
	return reply
}

func preview(message string) string {
	runes := []rune(message)
	if len(runes) > logPreviewLen {
		return string(runes[:logPreviewLen])
	}
	return message
}

func captureException(ctx context.Context, err error, userID string, matched intent.Intent) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "assistant")
		scope.SetTag("intent", string(matched))
		scope.SetUser(sentry.User{ID: userID})
		hub.CaptureException(err)
	})
}
