/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	"github.com/jonathanhungc/id3/dataset/sqlset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

const idColumn = `"id" INTEGER PRIMARY KEY AUTOINCREMENT`

/*
New takes a path to an SQLite3 database file and a limit to the number of
connections opened at a time (0 for no limit) and returns an Adapter that
works on the file's database or an error if it fails to open as an sqlite3
database.
*/
func New(path string, maxConns int) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)
	return sqlset.NewDBAdapter(db, placeholder, idColumn), nil
}

func placeholder(int) string {
	return "?"
}
