package users

import (
	"context"
	"slices"
	"time"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

type Service struct {
	users  *db.Collection[models.User]
	events mq.Emitter
	now    func() time.Time
}

func NewService(store *db.Store, events mq.Emitter) *Service {
	return &Service{
		users:  db.NewCollection[models.User](store, db.UsersCollection),
		events: events,
		now:    time.Now,
	}
}

func (s *Service) Get(ctx context.Context, uid string) (models.User, error) {
	user, ok, err := s.users.Find(ctx, func(u models.User) bool { return u.UID == uid })
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, utils.NotFound("User not found")
	}
	return user, nil
}

// Create registers a profile for uid. Counters always start at zero.
func (s *Service) Create(ctx context.Context, in models.CreateUser) (models.User, error) {
	user := models.User{
		UID:         in.UID,
		DisplayName: in.DisplayName,
		Email:       in.Email,
		PhotoURL:    in.PhotoURL,
		Bio:         in.Bio,
		CreatedAt:   utils.ISOTime(s.now()),
	}
	err := s.users.Mutate(ctx, func(all []models.User) ([]models.User, error) {
		if slices.ContainsFunc(all, func(u models.User) bool { return u.UID == in.UID }) {
			return nil, utils.Conflict("User already exists")
		}
		return append(all, user), nil
	})
	if err != nil {
		return models.User{}, err
	}
	s.events.Emit(ctx, db.UsersCollection, "create", user.UID)
	return user, nil
}

func (s *Service) Update(ctx context.Context, uid string, in models.UpdateUser) (models.User, error) {
	var updated models.User
	err := s.users.Mutate(ctx, func(all []models.User) ([]models.User, error) {
		i := slices.IndexFunc(all, func(u models.User) bool { return u.UID == uid })
		if i < 0 {
			return nil, utils.NotFound("User not found")
		}
		in.Apply(&all[i])
		updated = all[i]
		return all, nil
	})
	if err != nil {
		return models.User{}, err
	}
	s.events.Emit(ctx, db.UsersCollection, "update", uid)
	return updated, nil
}

// AdjustFollowCounts moves the follower's kitchenFriends and the target's
// followers by delta. Missing users are skipped and counters stay >= 0.
func (s *Service) AdjustFollowCounts(ctx context.Context, followerID, followingID string, delta int) error {
	var touched []string
	err := s.users.Mutate(ctx, func(all []models.User) ([]models.User, error) {
		for i := range all {
			switch all[i].UID {
			case followerID:
				all[i].KitchenFriends = max(0, all[i].KitchenFriends+delta)
				touched = append(touched, all[i].UID)
			case followingID:
				all[i].Followers = max(0, all[i].Followers+delta)
				touched = append(touched, all[i].UID)
			}
		}
		return all, nil
	})
	if err != nil {
		return err
	}
	for _, uid := range touched {
		s.events.Emit(ctx, db.UsersCollection, "update", uid)
	}
	return nil
}
