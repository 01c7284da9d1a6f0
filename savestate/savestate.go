// This file is part of screenpicture.
//
// screenpicture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// screenpicture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with screenpicture.  If not, see <https://www.gnu.org/licenses/>.

package savestate

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/logger"
	"github.com/tokineco/screenpicture/overlay"
	"github.com/tokineco/screenpicture/paths"
	"github.com/tokineco/screenpicture/tint"

	_ "modernc.org/sqlite"
)

// Sentinal error patterns.
const (
	NoSuchSave = "savestate: no save named %s"
	Database   = "savestate: %v"
)

// DefaultDatabase is the name of the database file in the resource path.
const DefaultDatabase = "savestates.db"

const schema = `
CREATE TABLE IF NOT EXISTS saves (
    name TEXT PRIMARY KEY,
    created INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS slots (
    save TEXT NOT NULL REFERENCES saves(name) ON DELETE CASCADE,
    slot INTEGER NOT NULL,
    picture_id INTEGER NOT NULL,
    kind INTEGER NOT NULL,
    asset TEXT NOT NULL DEFAULT '',
    red INTEGER NOT NULL DEFAULT 0,
    green INTEGER NOT NULL DEFAULT 0,
    blue INTEGER NOT NULL DEFAULT 0,
    opacity INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (save, slot)
);
`

// Save is the summary of a save in the database.
type Save struct {
	Name    string
	Created time.Time
}

func (s Save) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Created.Format(time.DateTime))
}

// Store of saves.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the path of the database in the resource path.
func DefaultPath() string {
	return paths.ResourcePath("", DefaultDatabase)
}

// Open the database at path. The database is created if it does not exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, curated.Errorf(Database, err)
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, curated.Errorf(Database, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, curated.Errorf(Database, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, curated.Errorf(Database, err)
	}

	logger.Logf(logger.Allow, "savestate", "opened %s", path)

	return &Store{db: db, path: path}, nil
}

// Close the database.
func (st *Store) Close() error {
	if err := st.db.Close(); err != nil {
		return curated.Errorf(Database, err)
	}
	return nil
}

// Save the slots under the name, replacing any earlier save with the same
// name.
func (st *Store) Save(name string, slots []overlay.Slot) error {
	tx, err := st.db.Begin()
	if err != nil {
		return curated.Errorf(Database, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM saves WHERE name = ?`, name); err != nil {
		return curated.Errorf(Database, err)
	}

	if _, err := tx.Exec(`INSERT INTO saves (name, created) VALUES (?, ?)`, name, time.Now().UnixNano()); err != nil {
		return curated.Errorf(Database, err)
	}

	for _, s := range slots {
		_, err := tx.Exec(`INSERT INTO slots (save, slot, picture_id, kind, asset, red, green, blue, opacity)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			name, int(s.ID), s.PictureID, int(s.Kind), s.Asset,
			int(s.Color.R), int(s.Color.G), int(s.Color.B), s.Opacity)
		if err != nil {
			return curated.Errorf(Database, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return curated.Errorf(Database, err)
	}

	logger.Logf(logger.Allow, "savestate", "saved %s (%d slots)", name, len(slots))

	return nil
}

// Load the slots saved under the name. The slots are in slot order.
func (st *Store) Load(name string) ([]overlay.Slot, error) {
	var created int64
	err := st.db.QueryRow(`SELECT created FROM saves WHERE name = ?`, name).Scan(&created)
	if err == sql.ErrNoRows {
		return nil, curated.Errorf(NoSuchSave, name)
	}
	if err != nil {
		return nil, curated.Errorf(Database, err)
	}

	rows, err := st.db.Query(`SELECT slot, picture_id, kind, asset, red, green, blue, opacity
		FROM slots WHERE save = ? ORDER BY slot`, name)
	if err != nil {
		return nil, curated.Errorf(Database, err)
	}
	defer rows.Close()

	var slots []overlay.Slot
	for rows.Next() {
		var s overlay.Slot
		var id, kind, r, g, b int
		err := rows.Scan(&id, &s.PictureID, &kind, &s.Asset, &r, &g, &b, &s.Opacity)
		if err != nil {
			return nil, curated.Errorf(Database, err)
		}
		s.ID = overlay.SlotID(id)
		s.Kind = overlay.SourceKind(kind)
		s.Color = tint.FromInts(r, g, b)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(Database, err)
	}

	logger.Logf(logger.Allow, "savestate", "loaded %s", name)

	return slots, nil
}

// List the saves in the database, most recent first.
func (st *Store) List() ([]Save, error) {
	rows, err := st.db.Query(`SELECT name, created FROM saves ORDER BY created DESC, name`)
	if err != nil {
		return nil, curated.Errorf(Database, err)
	}
	defer rows.Close()

	var saves []Save
	for rows.Next() {
		var s Save
		var created int64
		if err := rows.Scan(&s.Name, &created); err != nil {
			return nil, curated.Errorf(Database, err)
		}
		s.Created = time.Unix(0, created)
		saves = append(saves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(Database, err)
	}

	return saves, nil
}

// Delete the save with the name.
func (st *Store) Delete(name string) error {
	res, err := st.db.Exec(`DELETE FROM saves WHERE name = ?`, name)
	if err != nil {
		return curated.Errorf(Database, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return curated.Errorf(Database, err)
	}
	if n == 0 {
		return curated.Errorf(NoSuchSave, name)
	}
	return nil
}
