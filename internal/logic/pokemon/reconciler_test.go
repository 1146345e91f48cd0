package pokemon_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	"github.com/skillcoder/vmkube-controller/internal/logic/controller/mocks"
	"github.com/skillcoder/vmkube-controller/internal/logic/pokemon"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

type testNotFoundError struct{}

func (testNotFoundError) Error() string { return "not found" }
func (testNotFoundError) IsNotFound()   {}

var testKey = types.NamespacedName{Namespace: "default", Name: "pikachu"}

func newPokemon(health uint16, alive bool) *pokemonv1.Pokemon {
	return &pokemonv1.Pokemon{
		ObjectMeta: metav1.ObjectMeta{
			Name:       testKey.Name,
			Namespace:  testKey.Namespace,
			Finalizers: []string{pokemonv1.PokemonFinalizer},
		},
		Spec:   pokemonv1.PokemonSpec{Name: "Pikachu", Health: health},
		Status: pokemonv1.PokemonStatus{Alive: alive},
	}
}

func alivePatch(want bool) any {
	return mock.MatchedBy(func(p controller.StatusPatch) bool {
		patch, ok := p.(pokemonv1.PokemonStatusPatch)

		return ok && patch.Alive != nil && *patch.Alive == want
	})
}

func drain(recorder *record.FakeRecorder) []string {
	var events []string

	for {
		select {
		case event := <-recorder.Events:
			events = append(events, event)
		default:
			return events
		}
	}
}

func TestReconciler_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveHealth uint16
		giveAlive  bool
		wantAlive  bool
		wantEvents []string
	}{
		{
			name:       "revived pokemon emits event",
			giveHealth: 10,
			wantAlive:  true,
			wantEvents: []string{"Normal AliveRequested Aliving pikachu"},
		},
		{
			name:       "already alive stays quiet",
			giveHealth: 10,
			giveAlive:  true,
			wantAlive:  true,
		},
		{
			name:       "zero health is not alive",
			giveHealth: 0,
			giveAlive:  true,
			wantAlive:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockRepository(t)
			recorder := record.NewFakeRecorder(10)
			rec := pokemon.New(slog.Default(), repo, recorder, time.Minute)

			repo.EXPECT().
				GetPokemonQuery(mock.Anything, testKey).
				Return(newPokemon(tt.giveHealth, tt.giveAlive), nil).
				Once()
			repo.EXPECT().
				PatchStatusCommand(mock.Anything, mock.Anything, alivePatch(tt.wantAlive)).
				Return(nil).
				Once()

			action, err := rec.Reconcile(t.Context(), testKey)
			require.NoError(t, err)
			require.Equal(t, controller.Requeue(time.Minute), action)
			require.Equal(t, tt.wantEvents, drain(recorder))
		})
	}
}

func TestReconciler_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing object awaits change", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		rec := pokemon.New(slog.Default(), repo, record.NewFakeRecorder(1), 0)

		repo.EXPECT().
			GetPokemonQuery(mock.Anything, testKey).
			Return(nil, testNotFoundError{}).
			Once()

		action, err := rec.Reconcile(t.Context(), testKey)
		require.NoError(t, err)
		require.True(t, action.IsAwaitChange())
	})

	t.Run("read failure is returned", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		rec := pokemon.New(slog.Default(), repo, record.NewFakeRecorder(1), 0)

		repo.EXPECT().
			GetPokemonQuery(mock.Anything, testKey).
			Return(nil, errors.New("connection refused")).
			Once()

		_, err := rec.Reconcile(t.Context(), testKey)
		require.ErrorIs(t, err, controller.ErrGetObject)
	})

	t.Run("status write failure is returned", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		rec := pokemon.New(slog.Default(), repo, record.NewFakeRecorder(1), 0)

		repo.EXPECT().
			GetPokemonQuery(mock.Anything, testKey).
			Return(newPokemon(5, true), nil).
			Once()
		repo.EXPECT().
			PatchStatusCommand(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("forbidden")).
			Once()

		_, err := rec.Reconcile(t.Context(), testKey)
		require.ErrorIs(t, err, controller.ErrPatchStatus)
	})
}

func TestReconciler_Cleanup(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)
	recorder := record.NewFakeRecorder(10)
	rec := pokemon.New(slog.Default(), repo, recorder, time.Minute)

	obj := newPokemon(10, true)
	now := metav1.Now()
	obj.DeletionTimestamp = &now

	repo.EXPECT().
		GetPokemonQuery(mock.Anything, testKey).
		Return(obj, nil).
		Once()
	repo.EXPECT().
		RemoveFinalizerCommand(mock.Anything, obj, pokemonv1.PokemonFinalizer).
		Return(nil).
		Once()

	action, err := rec.Reconcile(t.Context(), testKey)
	require.NoError(t, err)
	require.True(t, action.IsAwaitChange())
	require.Equal(t, []string{"Normal DeleteRequested Delete pikachu"}, drain(recorder))
}
