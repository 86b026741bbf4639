/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/jonathanhungc/id3/dataset/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

const idColumn = `"id" SERIAL PRIMARY KEY`

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return sqlset.NewDBAdapter(db, placeholder, idColumn), nil
}

func placeholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}
