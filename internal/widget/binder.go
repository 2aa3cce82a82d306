package widget

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"paperhub/internal/api"
	"paperhub/internal/metrics"
	"paperhub/internal/viewstate"
	"paperhub/internal/vote"
)

// Mutator issues remote vote mutations. *api.Client satisfies it.
type Mutator interface {
	PostUpvote(ctx context.Context, t api.Target) (vote.Result, error)
	PostDownvote(ctx context.Context, t api.Target) (vote.Result, error)
}

// PropsFunc fetches the authoritative vote state of a widget. It is only
// called when the viewer has no cached record for it.
type PropsFunc func(ctx context.Context) (vote.State, error)

type Binder struct {
	mutator Mutator
	states  viewstate.Store
	now     func() time.Time
}

func NewBinder(m Mutator, states viewstate.Store) *Binder {
	return &Binder{mutator: m, states: states, now: time.Now}
}

// Bind renders a widget from fresh authoritative props. A cached record is
// kept unless the authoritative vote type changed since it was last seen.
func (b *Binder) Bind(ctx context.Context, viewer string, spec Spec, props vote.State) (View, error) {
	if err := spec.Validate(); err != nil {
		return View{}, err
	}
	return b.bind(ctx, viewer, spec, props, 0, false), nil
}

// bind does the load/observe/save cycle. For replies, checkParent makes a
// record bound under another parent generation count as missing.
func (b *Binder) bind(ctx context.Context, viewer string, spec Spec, props vote.State, parentGen uint64, checkParent bool) View {
	key := spec.Key()

	var e *vote.Entity
	rec, ok := b.load(ctx, viewer, key)
	if ok && checkParent && rec.ParentGeneration != parentGen {
		ok = false
	}
	if ok {
		e = vote.Restore(rec.Vote)
		if e.Observe(props) {
			metrics.ResyncsTotal.WithLabelValues(spec.Role.String()).Inc()
		}
	} else {
		e = vote.Mount(props)
	}

	b.save(ctx, viewer, key, viewstate.Record{Vote: e.Record(), ParentGeneration: parentGen})
	return newView(spec, e)
}

func (b *Binder) Upvote(ctx context.Context, viewer string, spec Spec, props PropsFunc) (View, vote.Outcome, error) {
	return b.cast(ctx, viewer, spec, vote.Upvote, props)
}

func (b *Binder) Downvote(ctx context.Context, viewer string, spec Spec, props PropsFunc) (View, vote.Outcome, error) {
	return b.cast(ctx, viewer, spec, vote.Downvote, props)
}

// cast runs one vote sequence. A failed mutation is not an error for the
// caller: the widget is returned unchanged with outcome Failed. The error
// return is reserved for a bad spec or a failed props fetch.
func (b *Binder) cast(ctx context.Context, viewer string, spec Spec, intent vote.Type, props PropsFunc) (View, vote.Outcome, error) {
	if err := spec.Validate(); err != nil {
		return View{}, vote.Failed, err
	}
	key := spec.Key()
	role := spec.Role.String()

	rec, ok := b.load(ctx, viewer, key)
	if !ok {
		auth, err := props(ctx)
		if err != nil {
			return View{}, vote.Failed, fmt.Errorf("fetch %s props: %w", role, err)
		}
		rec = viewstate.Record{Vote: vote.Mount(auth).Record(), ParentGeneration: b.parentGeneration(ctx, viewer, spec)}
		b.save(ctx, viewer, key, rec)
	}

	start := b.now()
	var res vote.Result
	var err error
	if intent == vote.Upvote {
		res, err = b.mutator.PostUpvote(ctx, spec.Target)
	} else {
		res, err = b.mutator.PostDownvote(ctx, spec.Target)
	}
	metrics.VoteMutationDuration.WithLabelValues(role).Observe(b.now().Sub(start).Seconds())

	// The record may have moved while the mutation was in flight
	if latest, ok := b.load(ctx, viewer, key); ok {
		rec = latest
	}
	e := vote.Restore(rec.Vote)

	outcome := vote.Failed
	if err != nil {
		log.Printf("[vote] %s %s on %s failed: %v", role, intent, spec.Target.Key(), err)
		if api.IsNotFound(err) {
			// Gone upstream; the next render starts from fresh props
			b.evict(ctx, viewer, key)
		}
	} else {
		outcome, err = e.Apply(res)
		switch {
		case err != nil:
			log.Printf("[vote] %s %s on %s rejected: %v", role, intent, spec.Target.Key(), err)
			outcome = vote.Failed
		case outcome == vote.AlreadyVoted:
			log.Printf("[vote] viewer already casted %s on %s %s", res.Type, role, spec.Target.Key())
		case outcome == vote.Failed:
			log.Printf("[vote] %s %s on %s was not successful", role, intent, spec.Target.Key())
		}
	}
	metrics.VotesTotal.WithLabelValues(role, intent.String(), outcome.String()).Inc()

	if outcome == vote.Applied {
		rec.Vote = e.Record()
		b.save(ctx, viewer, key, rec)
	}
	return newView(spec, e), outcome, nil
}

// parentGeneration returns the generation a new reply record should carry.
func (b *Binder) parentGeneration(ctx context.Context, viewer string, spec Spec) uint64 {
	if spec.Role != Reply {
		return 0
	}
	if rec, ok := b.load(ctx, viewer, spec.parent().Key()); ok {
		return rec.Vote.Generation
	}
	return 0
}

// load treats cache failures as a missing record so that a broken cache
// degrades to rendering from props.
func (b *Binder) load(ctx context.Context, viewer, key string) (viewstate.Record, bool) {
	rec, ok, err := b.states.Load(ctx, viewer, key)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("[vote] load view state %s: %v", key, err)
		}
		metrics.ViewStateErrors.WithLabelValues("load").Inc()
		return viewstate.Record{}, false
	}
	return rec, ok
}

func (b *Binder) evict(ctx context.Context, viewer, key string) {
	if err := b.states.Delete(ctx, viewer, key); err != nil {
		log.Printf("[vote] delete view state %s: %v", key, err)
		metrics.ViewStateErrors.WithLabelValues("delete").Inc()
	}
}

func (b *Binder) save(ctx context.Context, viewer, key string, rec viewstate.Record) {
	if err := b.states.Save(ctx, viewer, key, rec); err != nil {
		log.Printf("[vote] save view state %s: %v", key, err)
		metrics.ViewStateErrors.WithLabelValues("save").Inc()
	}
}
