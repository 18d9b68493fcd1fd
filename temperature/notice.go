// SPDX-License-Identifier: MIT

package temperature

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoticeKind classifies a non-fatal estimator diagnostic.
type NoticeKind int

const (
	// NoticeBelowBracket: D(-1/lo) < 0, the estimate was clamped to lo.
	NoticeBelowBracket NoticeKind = iota + 1

	// NoticeAboveBracket: D(-1/hi) > 0, the estimate was clamped to hi.
	NoticeAboveBracket

	// NoticeNoExcitations: no positive excitation, the estimate is 0.
	NoticeNoExcitations

	// NoticeNotConverged: the root search stopped before its tolerance.
	NoticeNotConverged
)

// String returns a stable snake_case name, used as a metric label.
func (k NoticeKind) String() string {
	switch k {
	case NoticeBelowBracket:
		return "below_bracket"
	case NoticeAboveBracket:
		return "above_bracket"
	case NoticeNoExcitations:
		return "no_excitations"
	case NoticeNotConverged:
		return "not_converged"
	default:
		return fmt.Sprintf("NoticeKind(%d)", int(k))
	}
}

// Notice is a diagnostic attached to a result. It never aborts an estimate.
type Notice struct {
	Kind    NoticeKind
	Message string
	// Bound is the temperature the estimate was clamped to, when relevant.
	Bound float64
}

func (n Notice) String() string { return n.Kind.String() + ": " + n.Message }

// Observer receives estimator events. Implementations must be safe for
// concurrent use: bootstrap replicates report from several goroutines.
type Observer interface {
	// ObserveEstimate is called once per point estimate, including replicates.
	ObserveEstimate(method Method, T float64, elapsed time.Duration)
	// ObserveBootstrap is called once per bootstrap run.
	ObserveBootstrap(replicates int, elapsed time.Duration)
	// ObserveNotice is called for every notice.
	ObserveNotice(n Notice)
}

func (c *config) emit(n Notice, T float64) {
	c.logger.LogAttrs(context.Background(), slog.LevelWarn, n.Message,
		slog.String("kind", n.Kind.String()),
		slog.Float64("bound", n.Bound),
		slog.Float64("temperature", T),
	)
	if c.observer != nil {
		c.observer.ObserveNotice(n)
	}
}

func belowBracket(lo float64) Notice {
	return Notice{
		Kind: NoticeBelowBracket,
		Message: "temperature is below the bracket lower bound, or negative; " +
			"rescale the model, lower the bound or use the newton method. " +
			"The estimate works best when excitations are O(1)",
		Bound: lo,
	}
}

func aboveBracket(hi float64) Notice {
	return Notice{
		Kind: NoticeAboveBracket,
		Message: "temperature is above the bracket upper bound, or negative; " +
			"rescale the model, raise the bound or use the newton method. " +
			"The estimate works best when excitations are O(1)",
		Bound: hi,
	}
}

func noExcitations() Notice {
	return Notice{
		Kind:    NoticeNoExcitations,
		Message: "no sample has a positive excitation; temperature estimated as 0",
	}
}

func notConverged(flag string) Notice {
	return Notice{
		Kind:    NoticeNotConverged,
		Message: "root search did not converge (" + flag + "); using the last iterate",
	}
}
