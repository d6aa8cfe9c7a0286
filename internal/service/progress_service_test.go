package service_test

import (
	"context"
	"errors"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/internal/repository/mocks"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/entity"
)

// memStore keeps goals, users and progress in memory. Transactions are serialized
// and a failed one restores the state it started from.
type memStore struct {
	mu       sync.Mutex
	goals    map[uuid.UUID]entity.Goal
	users    map[uuid.UUID]entity.User
	progress []entity.GoalProgress
	failOn   string
}

func newMemStore() *memStore {
	return &memStore{
		goals: make(map[uuid.UUID]entity.Goal),
		users: make(map[uuid.UUID]entity.User),
	}
}

func (s *memStore) addUser(streak, longest int) uuid.UUID {
	id := uuid.New()
	s.users[id] = entity.User{ID: id, CurrentStreak: streak, LongestStreak: longest}
	return id
}

func (s *memStore) addGoal(userID uuid.UUID, target, current float64) uuid.UUID {
	id := uuid.New()
	s.goals[id] = entity.Goal{ID: id, UserID: userID, TargetValue: target, CurrentValue: current}
	return id
}

func (s *memStore) WithinTx(ctx context.Context, fn func(tx repository.ProgressTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	goals := maps.Clone(s.goals)
	users := maps.Clone(s.users)
	progressLen := len(s.progress)
	if err := fn(&memTx{s: s}); err != nil {
		s.goals = goals
		s.users = users
		s.progress = s.progress[:progressLen]
		return err
	}
	return nil
}

func (s *memStore) GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]entity.GoalProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.GoalProgress, 0)
	for _, p := range s.progress {
		if p.GoalID == goalID {
			result = append(result, p)
		}
	}
	return result, nil
}

type memTx struct {
	s *memStore
}

func (tx *memTx) LockGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	g, ok := tx.s.goals[goalID]
	if !ok || g.UserID != userID {
		return nil, errorvalues.ErrGoalNotFound
	}
	return &g, nil
}

func (tx *memTx) InsertProgress(ctx context.Context, p *entity.GoalProgress) error {
	if tx.s.failOn == "insert" {
		return errors.New("insert failed")
	}
	p.ID = uuid.New()
	p.LoggedAt = time.Now()
	tx.s.progress = append(tx.s.progress, *p)
	return nil
}

func (tx *memTx) AddToCurrentValue(ctx context.Context, goalID uuid.UUID, delta float64) (float64, error) {
	g := tx.s.goals[goalID]
	g.CurrentValue += delta
	tx.s.goals[goalID] = g
	return g.CurrentValue, nil
}

func (tx *memTx) MarkCompleted(ctx context.Context, goalID uuid.UUID) (time.Time, bool, error) {
	g := tx.s.goals[goalID]
	if g.IsCompleted {
		return time.Time{}, false, nil
	}
	now := time.Now()
	g.IsCompleted = true
	g.CompletedAt = &now
	tx.s.goals[goalID] = g
	return now, true, nil
}

func (tx *memTx) IncrementStreak(ctx context.Context, userID uuid.UUID) (*entity.Streak, error) {
	if tx.s.failOn == "streak" {
		return nil, errors.New("streak update failed")
	}
	u := tx.s.users[userID]
	u.CurrentStreak++
	u.LongestStreak = max(u.LongestStreak, u.CurrentStreak)
	tx.s.users[userID] = u
	return &entity.Streak{Current: u.CurrentStreak, Longest: u.LongestStreak}, nil
}

func newProgressService(t *testing.T, store repository.ProgressStore) *service.ProgressService {
	ctrl := gomock.NewController(t)
	return service.NewProgressService(store, mocks.NewMockGoalsRepositoryI(ctrl))
}

func TestRecordProgressScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("8 plus 3 completes a goal of 10", func(t *testing.T) {
		store := newMemStore()
		uid := store.addUser(2, 2)
		goalID := store.addGoal(uid, 10, 8)
		ps := newProgressService(t, store)

		entry, err := ps.RecordProgress(ctx, goalID, uid, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, goalID, entry.GoalID)
		assert.NotEqual(t, uuid.Nil, entry.ID)
		goal := store.goals[goalID]
		assert.Equal(t, 11.0, goal.CurrentValue)
		assert.True(t, goal.IsCompleted)
		assert.NotNil(t, goal.CompletedAt)
		assert.Equal(t, 3, store.users[uid].CurrentStreak)
		assert.Equal(t, 3, store.users[uid].LongestStreak)

		completedAt := *goal.CompletedAt
		_, err = ps.RecordProgress(ctx, goalID, uid, 5, nil)
		require.NoError(t, err)
		goal = store.goals[goalID]
		assert.Equal(t, 16.0, goal.CurrentValue)
		assert.Equal(t, completedAt, *goal.CompletedAt)
		assert.Equal(t, 3, store.users[uid].CurrentStreak)
	})

	t.Run("negative delta lowers the total", func(t *testing.T) {
		store := newMemStore()
		uid := store.addUser(0, 0)
		goalID := store.addGoal(uid, 10, 5)
		ps := newProgressService(t, store)

		_, err := ps.RecordProgress(ctx, goalID, uid, -2, strPtr("miscounted"))
		require.NoError(t, err)
		assert.Equal(t, 3.0, store.goals[goalID].CurrentValue)
		assert.False(t, store.goals[goalID].IsCompleted)
		assert.Equal(t, 0, store.users[uid].CurrentStreak)
	})

	t.Run("longest streak is kept when current is behind", func(t *testing.T) {
		store := newMemStore()
		uid := store.addUser(1, 9)
		goalID := store.addGoal(uid, 1, 0)
		ps := newProgressService(t, store)

		_, err := ps.RecordProgress(ctx, goalID, uid, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, store.users[uid].CurrentStreak)
		assert.Equal(t, 9, store.users[uid].LongestStreak)
	})

	t.Run("dropping below target and crossing again does not complete twice", func(t *testing.T) {
		store := newMemStore()
		uid := store.addUser(0, 0)
		goalID := store.addGoal(uid, 10, 0)
		ps := newProgressService(t, store)

		for _, v := range []float64{10, -5, 7} {
			_, err := ps.RecordProgress(ctx, goalID, uid, v, nil)
			require.NoError(t, err)
		}
		assert.Equal(t, 12.0, store.goals[goalID].CurrentValue)
		assert.Equal(t, 1, store.users[uid].CurrentStreak)
	})

	t.Run("current value is the sum of entries", func(t *testing.T) {
		store := newMemStore()
		uid := store.addUser(0, 0)
		goalID := store.addGoal(uid, 100, 0)
		ps := newProgressService(t, store)

		values := []float64{1.5, 2.25, -0.75, 10, 4}
		sum := 0.0
		for _, v := range values {
			_, err := ps.RecordProgress(ctx, goalID, uid, v, nil)
			require.NoError(t, err)
			sum += v
		}
		assert.InDelta(t, sum, store.goals[goalID].CurrentValue, 1e-9)
		entries, err := store.GetByGoalID(ctx, goalID)
		require.NoError(t, err)
		require.Len(t, entries, len(values))
		for i, v := range values {
			assert.Equal(t, v, entries[i].Value)
		}
	})
}

func TestRecordProgressNotFound(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	owner := store.addUser(0, 0)
	stranger := store.addUser(0, 0)
	goalID := store.addGoal(owner, 10, 0)
	ps := newProgressService(t, store)

	_, errForeign := ps.RecordProgress(ctx, goalID, stranger, 1, nil)
	_, errMissing := ps.RecordProgress(ctx, uuid.New(), owner, 1, nil)
	assert.ErrorIs(t, errForeign, errorvalues.ErrGoalNotFound)
	assert.ErrorIs(t, errMissing, errorvalues.ErrGoalNotFound)
	assert.Equal(t, errForeign.Error(), errMissing.Error())
	assert.Empty(t, store.progress)
	assert.Equal(t, 0.0, store.goals[goalID].CurrentValue)
}

func TestRecordProgressRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uid := store.addUser(0, 0)
	goalID := store.addGoal(uid, 10, 8)
	store.failOn = "streak"
	ps := newProgressService(t, store)

	_, err := ps.RecordProgress(ctx, goalID, uid, 3, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrGoalNotFound)
	goal := store.goals[goalID]
	assert.Equal(t, 8.0, goal.CurrentValue)
	assert.False(t, goal.IsCompleted)
	assert.Nil(t, goal.CompletedAt)
	assert.Empty(t, store.progress)
	assert.Equal(t, 0, store.users[uid].CurrentStreak)
}

func TestRecordProgressConcurrentCrossing(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	uid := store.addUser(0, 0)
	goalID := store.addGoal(uid, 10, 9)
	ps := newProgressService(t, store)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ps.RecordProgress(ctx, goalID, uid, 1, nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 29.0, store.goals[goalID].CurrentValue)
	assert.Equal(t, 1, store.users[uid].CurrentStreak)
	assert.Len(t, store.progress, workers)
}

func TestRecordProgressSteps(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProgressStore(ctrl)
	tx := mocks.NewMockProgressTx(ctrl)
	ps := service.NewProgressService(store, mocks.NewMockGoalsRepositoryI(ctrl))
	uid := uuid.New()
	goalID := uuid.New()
	runTx := func(ctx context.Context, fn func(repository.ProgressTx) error) error {
		return fn(tx)
	}

	t.Run("completion lost to another transaction skips streak", func(t *testing.T) {
		store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		gomock.InOrder(
			tx.EXPECT().LockGoal(gomock.Any(), goalID, uid).Return(&entity.Goal{ID: goalID, UserID: uid, TargetValue: 10, CurrentValue: 9}, nil),
			tx.EXPECT().InsertProgress(gomock.Any(), gomock.Any()).Return(nil),
			tx.EXPECT().AddToCurrentValue(gomock.Any(), goalID, 1.0).Return(10.0, nil),
			tx.EXPECT().MarkCompleted(gomock.Any(), goalID).Return(time.Time{}, false, nil),
		)
		_, err := ps.RecordProgress(ctx, goalID, uid, 1, nil)
		assert.NoError(t, err)
	})
	t.Run("already completed goal is not marked again", func(t *testing.T) {
		store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		gomock.InOrder(
			tx.EXPECT().LockGoal(gomock.Any(), goalID, uid).Return(&entity.Goal{ID: goalID, UserID: uid, TargetValue: 10, CurrentValue: 12, IsCompleted: true}, nil),
			tx.EXPECT().InsertProgress(gomock.Any(), gomock.Any()).Return(nil),
			tx.EXPECT().AddToCurrentValue(gomock.Any(), goalID, 4.0).Return(16.0, nil),
		)
		_, err := ps.RecordProgress(ctx, goalID, uid, 4, nil)
		assert.NoError(t, err)
	})
	t.Run("streak goes to goal owner", func(t *testing.T) {
		store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		gomock.InOrder(
			tx.EXPECT().LockGoal(gomock.Any(), goalID, uid).Return(&entity.Goal{ID: goalID, UserID: uid, TargetValue: 10}, nil),
			tx.EXPECT().InsertProgress(gomock.Any(), gomock.Any()).Return(nil),
			tx.EXPECT().AddToCurrentValue(gomock.Any(), goalID, 10.0).Return(10.0, nil),
			tx.EXPECT().MarkCompleted(gomock.Any(), goalID).Return(time.Now(), true, nil),
			tx.EXPECT().IncrementStreak(gomock.Any(), uid).Return(&entity.Streak{Current: 1, Longest: 1}, nil),
		)
		_, err := ps.RecordProgress(ctx, goalID, uid, 10, nil)
		assert.NoError(t, err)
	})
	t.Run("infrastructure failure is wrapped", func(t *testing.T) {
		store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errors.New("begin transaction error: refused"))
		_, err := ps.RecordProgress(ctx, goalID, uid, 1, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recording progress error")
	})
}

func TestGetProgress(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProgressStore(ctrl)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)
	ps := service.NewProgressService(store, goalsRepo)
	owner := uuid.New()
	goalID := uuid.New()

	t.Run("owner reads log", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{ID: goalID, UserID: owner}, nil)
		store.EXPECT().GetByGoalID(gomock.Any(), goalID).Return([]entity.GoalProgress{{GoalID: goalID, Value: 1}}, nil)
		entries, err := ps.GetProgress(ctx, goalID, owner)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
	t.Run("foreign goal looks missing", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{ID: goalID, UserID: owner}, nil)
		_, err := ps.GetProgress(ctx, goalID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("missing goal", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(nil, errorvalues.ErrGoalNotFound)
		_, err := ps.GetProgress(ctx, goalID, owner)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}
