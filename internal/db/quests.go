package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// questColumns is the standard SELECT column list for quests.
const questColumns = `id, chain_id, objective, status, tier`

// scanQuest scans a quest row. The row must match questColumns.
func scanQuest(s interface{ Scan(...any) error }) (Quest, error) {
	var q Quest
	var chainID sql.NullInt64
	var status, tier int64
	if err := s.Scan(&q.ID, &chainID, &q.Objective, &status, &tier); err != nil {
		return Quest{}, err
	}
	if chainID.Valid {
		q.ChainID = &chainID.Int64
	}
	var err error
	if q.Status, err = StatusFromInt(status); err != nil {
		return Quest{}, err
	}
	if q.Tier, err = TierFromInt(tier); err != nil {
		return Quest{}, err
	}
	return q, nil
}

// Add inserts a new quest and returns the id the store assigned to it.
// A chain_id referencing no existing quest fails with ErrConstraint.
func (db *DB) Add(q Quest) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO quest (objective, status, tier, chain_id)
		VALUES (?, ?, ?, ?)`,
		q.Objective, int64(q.Status), int64(q.Tier), q.ChainID)
	if err != nil {
		return 0, fmt.Errorf("adding quest: %w", constraintErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading assigned quest id: %w", err)
	}
	return id, nil
}

// Get returns the quest with the given id, or ErrNotFound.
func (db *DB) Get(id int64) (Quest, error) {
	q, err := scanQuest(db.QueryRow(`SELECT `+questColumns+` FROM quest WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Quest{}, fmt.Errorf("quest %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Quest{}, fmt.Errorf("getting quest %d: %w", id, err)
	}
	return q, nil
}

// List returns every quest ordered ascending by id. The ordering is
// load-bearing: chain reconstruction relies on parents preceding children.
func (db *DB) List() ([]Quest, error) {
	rows, err := db.Query(`SELECT ` + questColumns + ` FROM quest ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing quests: %w", err)
	}
	defer rows.Close()

	var quests []Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("listing quests: %w", err)
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing quests: %w", err)
	}
	return quests, nil
}

// Update overwrites the objective, status, tier and chain_id of the quest with
// q.ID. Fails with ErrNotFound if no such quest exists.
func (db *DB) Update(q Quest) error {
	res, err := db.Exec(`
		UPDATE quest
		SET chain_id = ?, objective = ?, status = ?, tier = ?
		WHERE id = ?`,
		q.ChainID, q.Objective, int64(q.Status), int64(q.Tier), q.ID)
	if err != nil {
		return fmt.Errorf("updating quest %d: %w", q.ID, constraintErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating quest %d: %w", q.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("quest %d: %w", q.ID, ErrNotFound)
	}
	return nil
}

// subtreeCTE selects the ids of a quest and every quest transitively
// reachable from it through chain_id edges.
const subtreeCTE = `
	WITH RECURSIVE subtree(id) AS (
		SELECT id FROM quest WHERE id = ?
		UNION ALL
		SELECT q.id FROM quest q JOIN subtree s ON q.chain_id = s.id
	)
	SELECT id FROM subtree`

// DeleteSubtree removes a quest and all of its descendants in one statement,
// so a crash or concurrent reader never sees a partially deleted chain.
// Deleting an absent id affects zero rows and is not an error.
func (db *DB) DeleteSubtree(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM quest WHERE id IN (`+subtreeCTE+`)`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting chain %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting chain %d: %w", id, err)
	}
	return n, nil
}

// SetStatusSubtree sets the status of a quest and all of its descendants in
// one atomic statement.
func (db *DB) SetStatusSubtree(id int64, status Status) (int64, error) {
	res, err := db.Exec(`UPDATE quest SET status = ? WHERE id IN (`+subtreeCTE+`)`,
		int64(status), id)
	if err != nil {
		return 0, fmt.Errorf("setting chain %d status: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("setting chain %d status: %w", id, err)
	}
	return n, nil
}

// HasChildren reports whether at least one quest names id as its chain_id.
// A quest with children is a main quest: status changes and deletes against it
// cascade through the whole chain.
func (db *DB) HasChildren(id int64) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM quest WHERE chain_id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking quest %d children: %w", id, err)
	}
	return exists, nil
}
