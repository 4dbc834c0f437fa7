package identity

import (
	"database/sql"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"qsym/internal/qsymerr"
)

// SQLStore is a supplemental, queryable persistence backend for the
// identity database, mirroring the connection-wrapper shape of a
// sql.DB-backed manager: one embedded pure-Go sqlite file, one table,
// rows keyed by id. The line/record text format (Load/Serialize) remains
// the normative interchange format; this store is additive, for hosts
// that want to query by id without re-parsing the whole database.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (creating if necessary) a sqlite-backed identity
// store at path.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, qsymerr.Newf(qsymerr.ProofFailure, "identity.OpenSQLStore", "opening %s: %v", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, qsymerr.Newf(qsymerr.ProofFailure, "identity.OpenSQLStore", "pinging %s: %v", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS identities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		tags TEXT NOT NULL,
		record TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, qsymerr.Newf(qsymerr.ProofFailure, "identity.OpenSQLStore", "creating schema: %v", err)
	}
	return &SQLStore{db: db}, nil
}

// Close releases the underlying connection.
func (s *SQLStore) Close() error { return s.db.Close() }

// Put upserts entry, serialized as its own single-record text block.
// Entries without an id are minted one via uuid.
func (s *SQLStore) Put(entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	one := Database{entries: []Entry{entry}}
	record := one.Serialize()

	_, err := s.db.Exec(
		`INSERT INTO identities (id, name, tags, record) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, tags = excluded.tags, record = excluded.record`,
		entry.ID, entry.Name, joinTags(entry.Tags), record,
	)
	if err != nil {
		return qsymerr.Newf(qsymerr.ProofFailure, "identity.SQLStore.Put", "upserting %s: %v", entry.ID, err)
	}
	return nil
}

// Get retrieves the entry stored under id.
func (s *SQLStore) Get(id string) (Entry, bool, error) {
	row := s.db.QueryRow(`SELECT record FROM identities WHERE id = ?`, id)
	var record string
	if err := row.Scan(&record); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, qsymerr.Newf(qsymerr.ProofFailure, "identity.SQLStore.Get", "querying %s: %v", id, err)
	}
	db, err := Load(record)
	if err != nil {
		return Entry{}, false, err
	}
	if db.Len() != 1 {
		return Entry{}, false, qsymerr.Newf(qsymerr.ProofFailure, "identity.SQLStore.Get", "row %s did not parse to exactly one record", id)
	}
	return db.entries[0], true, nil
}

// LoadAll returns every stored record as a fresh in-memory Database.
func (s *SQLStore) LoadAll() (*Database, error) {
	rows, err := s.db.Query(`SELECT record FROM identities`)
	if err != nil {
		return nil, qsymerr.Newf(qsymerr.ProofFailure, "identity.SQLStore.LoadAll", "querying: %v", err)
	}
	defer rows.Close()

	out := NewDatabase()
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, qsymerr.Newf(qsymerr.ProofFailure, "identity.SQLStore.LoadAll", "scanning: %v", err)
		}
		one, err := Load(record)
		if err != nil {
			return nil, err
		}
		for _, e := range one.entries {
			out.Add(e)
		}
	}
	return out, rows.Err()
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ","
		}
		out += t
	}
	return out
}

