package sqlite

import "database/sql"

// schema sets up the reservations table. seq preserves insertion order,
// which is what All reports; id stays the lookup key. Instants are split into
// Unix seconds and a nanosecond remainder so every time.Time round-trips
// exactly, including years a single int64 of nanoseconds cannot hold.
const schema = `
CREATE TABLE IF NOT EXISTS reservations (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    guest_name TEXT NOT NULL,
    start_sec INTEGER NOT NULL,
    start_nsec INTEGER NOT NULL CHECK (start_nsec BETWEEN 0 AND 999999999),
    end_sec INTEGER NOT NULL,
    end_nsec INTEGER NOT NULL CHECK (end_nsec BETWEEN 0 AND 999999999),
    note TEXT,
    CHECK (start_sec < end_sec OR (start_sec = end_sec AND start_nsec < end_nsec))
);

CREATE INDEX IF NOT EXISTS idx_reservations_start ON reservations(start_sec, start_nsec);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
