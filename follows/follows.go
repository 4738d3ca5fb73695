package follows

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

// Counters keeps the follow counters on user profiles in step with the
// follow records.
type Counters interface {
	AdjustFollowCounts(ctx context.Context, followerID, followingID string, delta int) error
}

type Service struct {
	follows  *db.Collection[models.Follow]
	counters Counters
	events   mq.Emitter
	now      func() time.Time
	newID    func(prefix string) string
}

func NewService(store *db.Store, counters Counters, events mq.Emitter) *Service {
	return &Service{
		follows:  db.NewCollection[models.Follow](store, db.FollowsCollection),
		counters: counters,
		events:   events,
		now:      time.Now,
		newID:    utils.NewID,
	}
}

// Graph returns who userID follows and who follows userID.
func (s *Service) Graph(ctx context.Context, userID string) (models.FollowGraph, error) {
	all, err := s.follows.All(ctx)
	if err != nil {
		return models.FollowGraph{}, err
	}
	graph := models.FollowGraph{
		Following: []models.Follow{},
		Followers: []models.Follow{},
	}
	for _, f := range all {
		if f.FollowerID == userID {
			graph.Following = append(graph.Following, f)
		}
		if f.FollowingID == userID {
			graph.Followers = append(graph.Followers, f)
		}
	}
	return graph, nil
}

func (s *Service) Create(ctx context.Context, in models.CreateFollow) (models.Follow, error) {
	if in.FollowerID == in.FollowingID {
		return models.Follow{}, utils.Invalid("Cannot follow yourself")
	}

	follow := models.Follow{
		ID:          s.newID("follow"),
		FollowerID:  in.FollowerID,
		FollowingID: in.FollowingID,
		CreatedAt:   utils.ISOTime(s.now()),
	}
	err := s.follows.Mutate(ctx, func(all []models.Follow) ([]models.Follow, error) {
		if slices.ContainsFunc(all, samePair(in.FollowerID, in.FollowingID)) {
			return nil, utils.Conflict("Already following this user")
		}
		return append(all, follow), nil
	})
	if err != nil {
		return models.Follow{}, err
	}

	s.adjust(ctx, in.FollowerID, in.FollowingID, 1)
	s.events.Emit(ctx, db.FollowsCollection, "create", follow.ID)
	return follow, nil
}

// Delete removes the follow for the pair if present.
func (s *Service) Delete(ctx context.Context, followerID, followingID string) error {
	var removed []string
	err := s.follows.Mutate(ctx, func(all []models.Follow) ([]models.Follow, error) {
		match := samePair(followerID, followingID)
		for _, f := range all {
			if match(f) {
				removed = append(removed, f.ID)
			}
		}
		return slices.DeleteFunc(all, match), nil
	})
	if err != nil {
		return err
	}

	if len(removed) > 0 {
		s.adjust(ctx, followerID, followingID, -len(removed))
	}
	for _, id := range removed {
		s.events.Emit(ctx, db.FollowsCollection, "delete", id)
	}
	return nil
}

// adjust updates the profile counters. The follow record is already
// committed, so a failure here is logged rather than returned.
func (s *Service) adjust(ctx context.Context, followerID, followingID string, delta int) {
	if s.counters == nil {
		return
	}
	if err := s.counters.AdjustFollowCounts(ctx, followerID, followingID, delta); err != nil {
		slog.Warn("Failed to update follow counters",
			"follower", followerID,
			"following", followingID,
			"delta", delta,
			"error", err,
		)
	}
}

func samePair(followerID, followingID string) func(models.Follow) bool {
	return func(f models.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	}
}
