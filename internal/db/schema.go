package db

const schema = `
CREATE TABLE IF NOT EXISTS quest (
    id        INTEGER PRIMARY KEY,
    chain_id  INTEGER REFERENCES quest(id),
    objective TEXT NOT NULL,
    status    INTEGER NOT NULL,
    tier      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quest_chain ON quest(chain_id);
`
