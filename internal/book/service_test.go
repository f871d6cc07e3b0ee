package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func datePtr(d Date) *Date { return &d }

func TestServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, 10, 100)

	t.Run("assigns the id the store returns", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(7), nil)

		created, err := service.Create(context.Background(), Patch{
			Title:       strPtr("Ulysses"),
			ReleaseDate: datePtr(NewDate(1922, time.February, 2)),
			Author:      strPtr("James Joyce"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, "Ulysses", created.Title)
	})

	t.Run("client-supplied id is ignored", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b Book) (int64, error) {
				assert.Zero(t, b.ID)
				return 8, nil
			})

		created, err := service.Create(context.Background(), Patch{
			ID:          int64Ptr(999),
			Title:       strPtr("Ulysses"),
			ReleaseDate: datePtr(NewDate(1922, time.February, 2)),
			Author:      strPtr("James Joyce"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(8), created.ID)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		_, err := service.Create(context.Background(), Patch{Title: strPtr("No Author")})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("store failure passes through", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), storeErr)

		_, err := service.Create(context.Background(), Patch{
			Title:       strPtr("Ulysses"),
			ReleaseDate: datePtr(NewDate(1922, time.February, 2)),
			Author:      strPtr("James Joyce"),
		})

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestServiceSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, 10, 100)

	sample := Book{ID: 1, Title: "The Odyssey", Author: "Homer", ReleaseDate: NewDate(1614, time.January, 1)}

	t.Run("resolves the window against the count", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Nil()).Return(25, nil)
		mockRepo.EXPECT().
			Search(gomock.Any(), gomock.Nil(), SortByID, Ascending, 10, 20).
			Return([]Book{sample}, nil)

		books, window, err := service.Search(context.Background(), SearchRequest{
			SortBy:    SortByID,
			Direction: Ascending,
			Page:      "3",
			PerPage:   "10",
		})

		require.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, 20, window.Offset)
		assert.True(t, window.HasPrevious())
		assert.False(t, window.HasNext())
	})

	t.Run("zero matches is ErrNoBooksFound", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		mockRepo.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, _, err := service.Search(context.Background(), SearchRequest{
			Conditions: []Condition{{Field: "title", Value: "Nothing"}},
			SortBy:     SortByID,
			Direction:  Ascending,
		})

		assert.ErrorIs(t, err, ErrNoBooksFound)
	})

	t.Run("count failure passes through", func(t *testing.T) {
		storeErr := errors.New("pool exhausted")
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, storeErr)

		_, _, err := service.Search(context.Background(), SearchRequest{SortBy: SortByID, Direction: Ascending})

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, 10, 100)

	desc := "an epic poem"
	stored := Book{
		ID:          5,
		Title:       "The Odyssey",
		ReleaseDate: NewDate(1614, time.January, 1),
		Author:      "Homer",
		Description: &desc,
	}

	t.Run("merges the patch over the stored record, path id wins", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b Book) error {
				assert.Equal(t, int64(5), b.ID)
				assert.Equal(t, "New", b.Title)
				assert.Equal(t, "Homer", b.Author)
				assert.Equal(t, &desc, b.Description)
				return nil
			})

		updated, err := service.Update(context.Background(), 5, Patch{
			ID:    int64Ptr(999),
			Title: strPtr("New"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), updated.ID)
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "Homer", updated.Author)
	})

	t.Run("repeating the same update yields the same state", func(t *testing.T) {
		patch := Patch{Title: strPtr("New")}

		var persisted []Book
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil).Times(2)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b Book) error {
				persisted = append(persisted, b)
				return nil
			}).Times(2)

		first, err := service.Update(context.Background(), 5, patch)
		require.NoError(t, err)
		second, err := service.Update(context.Background(), 5, patch)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, persisted[0], persisted[1])
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(Book{}, ErrNotFound)

		_, err := service.Update(context.Background(), 42, Patch{Title: strPtr("New")})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("merged record is revalidated", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)

		_, err := service.Update(context.Background(), 5, Patch{Title: strPtr("")})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title is required", verr.Message)
	})
}
