package repository_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go-gin-event-discovery/internal/repository"
	apperrors "go-gin-event-discovery/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementRepository_List(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/engagement", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"_id":"g1","user":"u1","event":{"_id":"e1","title":"Jazz Night"},"attended":false,"createdAt":"2024-06-01T10:00:00.000Z"},
			{"_id":"g2","user":{"_id":"u1","name":"Sara"},"event":"e2"}
		]`)
	})
	repo := repository.NewEngagementRepository(newTestClient(t, mux))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "u1", list[0].UserID)
	assert.Equal(t, "Jazz Night", list[0].Event.Title)
	assert.False(t, list[0].CreatedAt.IsZero())

	assert.Equal(t, "u1", list[1].UserID)
	assert.Equal(t, "e2", list[1].Event.ID)
}

func TestEngagementRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/engagement", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "e1", body["eventId"])
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			writeJSON(w, http.StatusCreated, `{"_id":"g9","user":"u1","event":"e1"}`)
		})
		repo := repository.NewEngagementRepository(newTestClient(t, mux))

		created, err := repo.Create(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "g9", created.ID)
		assert.Equal(t, "e1", created.Event.ID)
	})

	t.Run("missing id in response", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/engagement", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, `{}`)
		})
		repo := repository.NewEngagementRepository(newTestClient(t, mux))

		_, err := repo.Create(ctx, "e1")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("empty event id", func(t *testing.T) {
		repo := repository.NewEngagementRepository(newTestClient(t, http.NewServeMux()))
		_, err := repo.Create(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestEngagementRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success with empty body", func(t *testing.T) {
		var deleted string
		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /api/engagement/{id}", func(w http.ResponseWriter, r *http.Request) {
			deleted = r.PathValue("id")
			w.WriteHeader(http.StatusNoContent)
		})
		repo := repository.NewEngagementRepository(newTestClient(t, mux))

		require.NoError(t, repo.Delete(ctx, "g1"))
		assert.Equal(t, "g1", deleted)
	})

	t.Run("not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /api/engagement/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"message":"Engagement not found"}`)
		})
		repo := repository.NewEngagementRepository(newTestClient(t, mux))

		assert.ErrorIs(t, repo.Delete(ctx, "g1"), apperrors.ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		repo := repository.NewEngagementRepository(newTestClient(t, http.NewServeMux()))
		assert.ErrorIs(t, repo.Delete(ctx, ""), apperrors.ErrInvalidInput)
	})
}
