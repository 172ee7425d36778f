package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/studydesk/studydesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.StudySession")).Return(nil)
		svc := NewSessionService(mockRepo)

		session, err := svc.Create(ctx, "  Thermodynamics  ")
		require.NoError(t, err)
		assert.Equal(t, "Thermodynamics", session.Title)
		assert.Equal(t, session.CreatedAt, session.UpdatedAt)
		assert.Equal(t, "UTC", session.CreatedAt.Location().String())

		mockRepo.AssertExpectations(t)
	})

	t.Run("title length boundaries", func(t *testing.T) {
		tests := []struct {
			name  string
			title string
			ok    bool
		}{
			{"one char", "a", true},
			{"exactly 200", strings.Repeat("x", 200), true},
			{"empty", "", false},
			{"whitespace only", "   ", false},
			{"201 chars", strings.Repeat("x", 201), false},
			// Multibyte titles count characters, not bytes.
			{"150 CJK chars", strings.Repeat("熱", 150), true},
			{"exactly 200 CJK chars", strings.Repeat("熱", 200), true},
			{"201 CJK chars", strings.Repeat("熱", 201), false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := new(MockSessionRepository)
				if tt.ok {
					mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.StudySession")).Return(nil)
				}
				svc := NewSessionService(mockRepo)

				_, err := svc.Create(ctx, tt.title)
				if tt.ok {
					assert.NoError(t, err)
					mockRepo.AssertExpectations(t)
				} else {
					var verr *domain.ValidationError
					assert.ErrorAs(t, err, &verr)
					mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				}
			})
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := NewSessionService(nil)

		_, err := svc.Create(ctx, "Thermodynamics")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("repo error wrapped", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("write failed"))
		svc := NewSessionService(mockRepo)

		_, err := svc.Create(ctx, "Thermodynamics")
		assert.ErrorContains(t, err, "write failed")
	})
}

func TestSessionService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("limit clamping", func(t *testing.T) {
		tests := []struct {
			give int
			want int
		}{
			{0, 1},
			{-5, 1},
			{1, 1},
			{20, 20},
			{100, 100},
			{1000, 100},
		}

		for _, tt := range tests {
			mockRepo := new(MockSessionRepository)
			mockRepo.On("List", ctx, tt.want).Return([]domain.StudySession{}, nil).Once()
			svc := NewSessionService(mockRepo)

			_, err := svc.List(ctx, tt.give)
			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := NewSessionService(nil)

		_, err := svc.List(ctx, 20)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
