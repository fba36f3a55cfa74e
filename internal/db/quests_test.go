package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "pomdb.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// mustAdd inserts a quest and returns its assigned id.
func mustAdd(t *testing.T, database *DB, objective string, chainID *int64) int64 {
	t.Helper()
	id, err := database.Add(NewQuest(objective, Pending, Common, chainID))
	require.NoError(t, err)
	return id
}

// seedDragonChain builds the canonical four-quest chain:
//
//	1 Defeat dragon
//	├── 2 Find sword
//	│   └── 3 Sharpen sword
//	└── 4 Train stamina
func seedDragonChain(t *testing.T, database *DB) []int64 {
	t.Helper()
	root := mustAdd(t, database, "Defeat dragon", nil)
	sword := mustAdd(t, database, "Find sword", &root)
	sharpen := mustAdd(t, database, "Sharpen sword", &sword)
	train := mustAdd(t, database, "Train stamina", &root)
	return []int64{root, sword, sharpen, train}
}

func TestAddGetRoundTrip(t *testing.T) {
	database := openTestDB(t)

	parent := mustAdd(t, database, "Defeat dragon", nil)
	q := NewQuest("Find sword", Waiting, Epic, &parent)
	id, err := database.Add(q)
	require.NoError(t, err)
	require.Greater(t, id, parent, "ids are assigned in ascending order")

	got, err := database.Get(id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, q.Objective, got.Objective)
	require.Equal(t, q.Status, got.Status)
	require.Equal(t, q.Tier, got.Tier)
	require.NotNil(t, got.ChainID)
	require.Equal(t, parent, *got.ChainID)
}

func TestAddRejectsMissingParent(t *testing.T) {
	database := openTestDB(t)

	missing := int64(99)
	_, err := database.Add(NewQuest("Find sword", Pending, Common, &missing))
	require.ErrorIs(t, err, ErrConstraint)
}

func TestGetNotFound(t *testing.T) {
	database := openTestDB(t)

	_, err := database.Get(1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNotFound(t *testing.T) {
	database := openTestDB(t)

	q := NewQuest("Defeat dragon", Pending, Common, nil)
	q.ID = 42
	require.ErrorIs(t, database.Update(q), ErrNotFound)
}

func TestUpdateOverwritesFields(t *testing.T) {
	database := openTestDB(t)
	ids := seedDragonChain(t, database)

	q, err := database.Get(ids[1])
	require.NoError(t, err)
	q.Objective = "Find the ancient sword"
	q.Status = Ongoing
	q.Tier = Legendary
	require.NoError(t, database.Update(q))

	got, err := database.Get(ids[1])
	require.NoError(t, err)
	require.Equal(t, q, got)
}

func TestListOrderedByID(t *testing.T) {
	database := openTestDB(t)
	ids := seedDragonChain(t, database)

	quests, err := database.List()
	require.NoError(t, err)
	require.Len(t, quests, len(ids))
	for i, q := range quests {
		require.Equal(t, ids[i], q.ID)
	}
}

func TestDeleteSubtreeRemovesWholeChain(t *testing.T) {
	database := openTestDB(t)
	ids := seedDragonChain(t, database)
	other := mustAdd(t, database, "Buy groceries", nil)

	n, err := database.DeleteSubtree(ids[0])
	require.NoError(t, err)
	require.EqualValues(t, 4, n)

	quests, err := database.List()
	require.NoError(t, err)
	require.Len(t, quests, 1)
	require.Equal(t, other, quests[0].ID)
}

func TestDeleteSubtreeAbsentIDIsNoop(t *testing.T) {
	database := openTestDB(t)
	seedDragonChain(t, database)

	n, err := database.DeleteSubtree(99)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	quests, err := database.List()
	require.NoError(t, err)
	require.Len(t, quests, 4)
}

func TestSetStatusSubtree(t *testing.T) {
	database := openTestDB(t)
	ids := seedDragonChain(t, database)
	other := mustAdd(t, database, "Buy groceries", nil)

	n, err := database.SetStatusSubtree(ids[1], Completed)
	require.NoError(t, err)
	require.EqualValues(t, 2, n, "Find sword and Sharpen sword")

	for _, tc := range []struct {
		id   int64
		want Status
	}{
		{ids[0], Pending},
		{ids[1], Completed},
		{ids[2], Completed},
		{ids[3], Pending},
		{other, Pending},
	} {
		q, err := database.Get(tc.id)
		require.NoError(t, err)
		require.Equal(t, tc.want, q.Status, "quest %d", tc.id)
	}
}

// The set of quests a status cascade touches must be exactly the set a delete
// cascade removes, evaluated on the same snapshot.
func TestCascadeEquivalence(t *testing.T) {
	database := openTestDB(t)
	ids := seedDragonChain(t, database)

	statusTouched, err := database.SetStatusSubtree(ids[0], Abandoned)
	require.NoError(t, err)

	deleted, err := database.DeleteSubtree(ids[0])
	require.NoError(t, err)
	require.Equal(t, statusTouched, deleted)
}

func TestHasChildren(t *testing.T) {
	database := openTestDB(t)
	ids := seedDragonChain(t, database)

	for _, tc := range []struct {
		id   int64
		want bool
	}{
		{ids[0], true},
		{ids[1], true},
		{ids[2], false},
		{ids[3], false},
	} {
		got, err := database.HasChildren(tc.id)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "quest %d", tc.id)
	}
}

func TestGetRejectsCorruptEncoding(t *testing.T) {
	database := openTestDB(t)
	id := mustAdd(t, database, "Defeat dragon", nil)

	_, err := database.Exec(`UPDATE quest SET status = 9 WHERE id = ?`, id)
	require.NoError(t, err)

	_, err = database.Get(id)
	var encErr *InvalidEncodingError
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, "status", encErr.Field)
	require.EqualValues(t, 9, encErr.Value)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomdb.sqlite")

	first, err := Open(path)
	require.NoError(t, err)
	id := mustAdd(t, first, "Defeat dragon", nil)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	q, err := second.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Defeat dragon", q.Objective)
}
