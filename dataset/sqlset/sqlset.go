package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jonathanhungc/id3/dataset"
)

const (
	// TableName is the name of the table holding the examples.
	TableName = "examples"
	// MaxExampleInsertionsPerStatement is the maximum number
	// of examples that are allowed to be added with a single
	// insert command with the AddExamples method of an adapter.
	// Trying to add more will result in making more insertion commands
	MaxExampleInsertionsPerStatement = 10
)

/*
Adapter is an interface providing the methods
needed to read and write examples on a database backend.
*/
type Adapter interface {
	ColumnName(string) (string, error)
	CreateExampleTable(ctx context.Context, columns []string) error
	AddExamples(ctx context.Context, rows [][]string, columns []string) (int, error)
	IterateOnExamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error
	CountExamples(ctx context.Context) (int, error)
	Close() error
}

type dbAdapter struct {
	db          *sql.DB
	placeholder func(int) string
	idColumn    string
}

type sqlWriter struct {
	ctx     context.Context
	adapter Adapter
	columns []string
	count   int
}

/*
NewDBAdapter takes an open *sql.DB, a function returning the parameter
placeholder for the i-th (0-based) parameter of a statement, and the
definition of the id column for the dialect of the database, and returns
an Adapter that works on the database.
*/
func NewDBAdapter(db *sql.DB, placeholder func(int) string, idColumn string) Adapter {
	return &dbAdapter{db, placeholder, idColumn}
}

/*
ReadSet takes a context, an Adapter and the names of the columns holding
the attribute values and the label, the label last, and returns the
dataset.Set of the examples on the database in the order they were
written, or an error.
*/
func ReadSet(ctx context.Context, a Adapter, names []string) (*dataset.Set, error) {
	columns, err := columnNames(a, names)
	if err != nil {
		return nil, err
	}
	var examples []dataset.Example
	err = a.IterateOnExamples(ctx, columns, func(i int, row []string) (bool, error) {
		e, err := dataset.NewExampleFromRow(row)
		if err != nil {
			return false, fmt.Errorf("reading example %d: %v", i, err)
		}
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading examples: %v", err)
	}
	return dataset.New(examples)
}

/*
CreateWriter takes a context, an Adapter and the names of the columns for
the attribute values and the label, the label last, ensures the examples
table exists and returns a dataset.Writer that adds examples to it.
The context is used for every write operation.
*/
func CreateWriter(ctx context.Context, a Adapter, names []string) (dataset.Writer, error) {
	columns, err := columnNames(a, names)
	if err != nil {
		return nil, err
	}
	err = a.CreateExampleTable(ctx, columns)
	if err != nil {
		return nil, err
	}
	return &sqlWriter{ctx: ctx, adapter: a, columns: columns}, nil
}

/*
ColumnName takes a name and returns it as a column name or an error if it
cannot be used as one: the id column name is reserved and double quotes
are not allowed.
*/
func ColumnName(name string) (string, error) {
	if name == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as column name`, name)
	}
	if name == "" {
		return "", fmt.Errorf("empty column name")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`column name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

/*
CreateTableStatement takes the columns for the examples table and the
definition of its id column and returns the statement creating it.
*/
func CreateTableStatement(columns []string, idColumn string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(", TableName))
	for _, c := range columns {
		buf.WriteString(fmt.Sprintf(`"%s" TEXT NOT NULL, `, c))
	}
	buf.WriteString(idColumn)
	buf.WriteString(")")
	return buf.String()
}

/*
InsertStatement takes the columns of the examples table, a number of rows
and a placeholder function and returns the statement inserting that many
rows at once.
*/
func InsertStatement(columns []string, rowCount int, placeholder func(int) string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`INSERT INTO %s ("`, TableName))
	buf.WriteString(strings.Join(columns, `", "`))
	buf.WriteString(`") VALUES `)
	p := 0
	for r := 0; r < rowCount; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for c := range columns {
			if c > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(placeholder(p))
			p++
		}
		buf.WriteString(")")
	}
	return buf.String()
}

/*
SelectStatement takes the columns of the examples table and returns the
statement listing them for every example in insertion order.
*/
func SelectStatement(columns []string) string {
	return fmt.Sprintf(`SELECT "%s" FROM %s ORDER BY "id"`, strings.Join(columns, `", "`), TableName)
}

func (a *dbAdapter) ColumnName(name string) (string, error) {
	return ColumnName(name)
}

func (a *dbAdapter) CreateExampleTable(ctx context.Context, columns []string) error {
	createStmt, err := a.db.PrepareContext(ctx, CreateTableStatement(columns, a.idColumn))
	if err != nil {
		return fmt.Errorf("preparing %s creation statement: %v", TableName, err)
	}
	defer createStmt.Close()
	_, err = createStmt.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("ensuring %s table exists: %v", TableName, err)
	}
	return nil
}

func (a *dbAdapter) AddExamples(ctx context.Context, rows [][]string, columns []string) (int, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("no columns to store")
	}
	var added int
	for added < len(rows) {
		end := added + MaxExampleInsertionsPerStatement
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[added:end]
		values := make([]interface{}, 0, len(chunk)*len(columns))
		for i, r := range chunk {
			if len(r) != len(columns) {
				return added, fmt.Errorf("example %d has %d fields, expected %d", added+i, len(r), len(columns))
			}
			for _, v := range r {
				values = append(values, v)
			}
		}
		_, err := a.db.ExecContext(ctx, InsertStatement(columns, len(chunk), a.placeholder), values...)
		if err != nil {
			return added, fmt.Errorf("inserting examples %d to %d: %v", added, end-1, err)
		}
		added = end
	}
	return added, nil
}

func (a *dbAdapter) IterateOnExamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, SelectStatement(columns))
	if err != nil {
		return err
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		row := make([]string, len(columns))
		dest := make([]interface{}, len(columns))
		for j := range row {
			dest[j] = &row[j]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return err
		}
		ok, err := lambda(i, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *dbAdapter) CountExamples(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", TableName)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting examples: %v", err)
	}
	return count, nil
}

func (a *dbAdapter) Close() error {
	return a.db.Close()
}

func (sw *sqlWriter) Write(ctx context.Context, examples []dataset.Example) (int, error) {
	rows := make([][]string, len(examples))
	for i, e := range examples {
		rows[i] = e.Row()
	}
	n, err := sw.adapter.AddExamples(ctx, rows, sw.columns)
	sw.count += n
	return n, err
}

func (sw *sqlWriter) Count() int {
	return sw.count
}

func (sw *sqlWriter) Flush() error {
	return sw.ctx.Err()
}

func columnNames(a Adapter, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no columns given")
	}
	columns := make([]string, len(names))
	for i, n := range names {
		c, err := a.ColumnName(n)
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return columns, nil
}
