package test

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/lifedash/internal/apiclient"
	"github.com/2beens/lifedash/internal/gym"
	"github.com/2beens/lifedash/internal/session"

	"github.com/brianvoe/gofakeit/v6"
)

func (s *IntegrationTestSuite) openWorkouts() int {
	var n int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM workouts WHERE ended_at IS NULL`).Scan(&n))
	return n
}

func (s *IntegrationTestSuite) openStudySessions() int {
	var n int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM study_sessions WHERE ended_at IS NULL`).Scan(&n))
	return n
}

func (s *IntegrationTestSuite) TestWorkouts_SingleActive() {
	ctx := context.Background()
	c := s.loggedInClient(ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.StartWorkout(ctx, "race", time.Now()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	s.Equal(1, s.openWorkouts())

	active, err := c.ActiveWorkout(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(active)

	resp, err := c.EndWorkout(ctx, active.ID, time.Now(), true)
	s.Require().NoError(err)
	s.False(resp.Saved, "an empty workout is dropped")
	s.Equal(0, s.openWorkouts())

	_, err = c.EndWorkout(ctx, active.ID, time.Now(), true)
	s.ErrorIs(err, apiclient.ErrNotFound)
}

func (s *IntegrationTestSuite) TestStudySessions_SingleActive() {
	ctx := context.Background()
	c := s.loggedInClient(ctx)

	first, err := c.StartStudySession(ctx, nil, time.Now().Add(-30*time.Minute))
	s.Require().NoError(err)
	second, err := c.StartStudySession(ctx, nil, time.Now())
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)
	s.Equal(1, s.openStudySessions())

	var duration *int
	s.Require().NoError(s.DB.QueryRow(`SELECT duration_minutes FROM study_sessions WHERE id = $1`, first.ID).Scan(&duration))
	s.Require().NotNil(duration, "the replaced session was closed with a duration")
	s.GreaterOrEqual(*duration, 29)
}

// Two devices share one account, each with its own local state.
func (s *IntegrationTestSuite) TestSessionManager_TwoDevices() {
	ctx := context.Background()
	c := s.loggedInClient(ctx)

	laptop := session.NewManager(session.NewGymTracker(c, 0), session.NewFileStore(s.T().TempDir()))
	phone := session.NewManager(session.NewGymTracker(c, 0), session.NewFileStore(s.T().TempDir()))
	s.Require().NoError(laptop.Recover(ctx))
	s.Require().NoError(phone.Recover(ctx))

	started, err := laptop.StartSession(ctx, session.StartData{Name: "push", StartedAt: time.Now().Add(-time.Hour)})
	s.Require().NoError(err)
	_, err = c.AddLift(ctx, liftFor(started.ID))
	s.Require().NoError(err)

	// the phone learns about the laptop session on its next sync
	s.Require().NoError(phone.SyncWithDatabase(ctx))
	s.Require().True(phone.IsActive())
	s.Equal(started.ID, phone.Session().ID)

	res, err := phone.EndSession(ctx)
	s.Require().NoError(err)
	s.True(res.Saved)

	// the laptop still thinks it runs, ending it again is harmless
	s.True(laptop.IsActive())
	res, err = laptop.EndSession(ctx)
	s.Require().NoError(err)
	s.False(res.Saved)
	s.False(laptop.IsActive())
	s.Equal(0, s.openWorkouts())
}

func liftFor(workoutID int) gym.Lift {
	faker := gofakeit.New(7)
	return gym.Lift{
		WorkoutID: workoutID,
		Exercise:  "bench press",
		Weight:    float64(faker.IntRange(40, 120)),
		Reps:      faker.IntRange(3, 12),
	}
}
