package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "formaops_backend/internals/features/operations/sessions/model"
)

func TestSessionDisplayName(t *testing.T) {
	assert.Equal(t, "Prevención de riesgos - Sesión 1", SessionDisplayName("Prevención de riesgos", 1))
	assert.Equal(t, "Sesión 3", SessionDisplayName("", 3))
	assert.Equal(t, "Sesión 2", SessionDisplayName("   ", 2))
}

func TestReindexSiblings_StableOrderAndGapFree(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	product := uuid.New()

	// addSession avanza el reloj: created_at crece en orden de alta
	first := st.addSession(product, nil, nil, nil)
	second := st.addSession(product, nil, nil, nil)
	third := st.addSession(product, nil, nil, nil)
	// sesión de otro producto, fuera del reindexado
	other := st.addSession(uuid.New(), nil, nil, nil)
	other.TrainingSessionName = "ajena"

	names, err := ReindexSiblings(ctx, st, product, "Soldadura")
	require.NoError(t, err)
	require.Len(t, names, 3)

	assert.Equal(t, "Soldadura - Sesión 1", names[first.TrainingSessionID])
	assert.Equal(t, "Soldadura - Sesión 2", names[second.TrainingSessionID])
	assert.Equal(t, "Soldadura - Sesión 3", names[third.TrainingSessionID])
	assert.Equal(t, "ajena", other.TrainingSessionName)

	// los nombres quedan persistidos
	assert.Equal(t, "Soldadura - Sesión 1", first.TrainingSessionName)
	assert.Equal(t, "Soldadura - Sesión 3", third.TrainingSessionName)
}

func TestReindexSiblings_TieBreakOnCreatedAt(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	product := uuid.New()

	a := st.addSession(product, nil, nil, nil)
	b := st.addSession(product, nil, nil, nil)
	// mismo created_at: desempata el id
	b.TrainingSessionCreatedAt = a.TrainingSessionCreatedAt

	names, err := ReindexSiblings(ctx, st, product, "Base")
	require.NoError(t, err)

	lo, hi := a, b
	if b.TrainingSessionID.String() < a.TrainingSessionID.String() {
		lo, hi = b, a
	}
	assert.Equal(t, "Base - Sesión 1", names[lo.TrainingSessionID])
	assert.Equal(t, "Base - Sesión 2", names[hi.TrainingSessionID])
}

func TestReindexSiblings_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	product := uuid.New()
	st.addSession(product, nil, nil, nil)
	st.addSession(product, nil, nil, nil)

	_, err := ReindexSiblings(ctx, st, product, "Base")
	require.NoError(t, err)
	renames := st.calls["RenameSession"]
	assert.Equal(t, 2, renames)

	// segunda pasada: nombres ya correctos, cero renames
	_, err = ReindexSiblings(ctx, st, product, "Base")
	require.NoError(t, err)
	assert.Equal(t, renames, st.calls["RenameSession"])
}

func TestReindexSiblings_ClosesGaps(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	product := uuid.New()

	a := st.addSession(product, nil, nil, nil)
	st.addSession(product, nil, nil, nil)
	c := st.addSession(product, nil, nil, nil)
	_, err := ReindexSiblings(ctx, st, product, "Base")
	require.NoError(t, err)

	// desaparece la del medio: la numeración se compacta sin huecos
	st.sessions = []*m.TrainingSessionModel{a, c}

	names, err := ReindexSiblings(ctx, st, product, "Base")
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Base - Sesión 1", names[a.TrainingSessionID])
	assert.Equal(t, "Base - Sesión 2", names[c.TrainingSessionID])
}
