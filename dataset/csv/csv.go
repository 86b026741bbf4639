/*
Package csv reads example sets from and writes them to CSV streams. Each row
holds the values of an example's attributes followed by its label.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathanhungc/id3/dataset"
)

type csvWriter struct {
	count int
	w     *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and a header boolean and returns
the dataset.Set of the examples parsed from the reader or an error. If header
is true, the first row is taken as the names of the columns and returned as
well, otherwise the returned names are nil.

Every field is trimmed of surrounding whitespace. All rows are expected to
have the same number of fields, the last of which is the label.
*/
func ReadSet(reader io.Reader, header bool) (*dataset.Set, []string, error) {
	examples := []dataset.Example{}
	names, err := ReadSetByExample(reader, header, func(_ int, e dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	s, err := dataset.New(examples)
	if err != nil {
		return nil, nil, err
	}
	return s, names, nil
}

/*
ReadSetByExample takes an io.Reader for a CSV stream, a header boolean and a
lambda function on an integer and a dataset.Example that returns a boolean
value. It parses the examples from the reader and for each it calls the
lambda function with the example and its index as parameters. If the lambda
function returns true, it will continue processing the next example,
otherwise it will stop. It returns the column names read from the header if
header is true, and an error if something goes wrong when reading the stream
or a row does not have as many fields as the first one.
*/
func ReadSetByExample(reader io.Reader, header bool, lambda func(int, dataset.Example) (bool, error)) ([]string, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	var names []string
	width := -1
	l := 1
	if header {
		row, err := r.Read()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading header: %v", err)
		}
		names = trimFields(row)
		width = len(names)
		l++
	}
	for i := 0; ; i, l = i+1, l+1 {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		if width < 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, fmt.Errorf("parsing line %d: got %d fields, expected %d", l, len(row), width)
		}
		e, err := dataset.NewExampleFromRow(trimFields(row))
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(i, e)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return names, nil
}

/*
ReadSetFromFilePath takes a filepath string and a header boolean, opens the
file to which the filepath points to and uses ReadSet to return a
dataset.Set and its column names or an error read from it. If the filepath
is "" os.Stdin is used instead. It will return an error if the given filepath
cannot be opened for reading.
*/
func ReadSetFromFilePath(filepath string, header bool) (*dataset.Set, []string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading example set: %v", err)
		}
		defer f.Close()
	}
	s, names, err := ReadSet(f, header)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return s, names, err
}

/*
NewWriter takes an io.Writer and a slice of column names and returns a
dataset.Writer that will write any examples on the io.Writer. If names is
not empty it is written first as a header row.
*/
func NewWriter(writer io.Writer, names []string) (dataset.Writer, error) {
	w := csv.NewWriter(writer)
	if len(names) > 0 {
		err := w.Write(names)
		if err != nil {
			return nil, fmt.Errorf("writing CSV header: %v", err)
		}
	}
	return &csvWriter{w: w}, nil
}

/*
WriteCSVSet takes a writer, a dataset.Set and a slice of column names and
dumps to the writer the set in CSV format, with a header row if names is
not empty. It returns an error if something went wrong when writing to the
writer.
*/
func WriteCSVSet(ctx context.Context, writer io.Writer, s *dataset.Set, names []string) error {
	cw, err := NewWriter(writer, names)
	if err != nil {
		return err
	}
	_, err = cw.Write(ctx, s.Examples())
	if err != nil {
		return err
	}
	return cw.Flush()
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(ctx context.Context, examples []dataset.Example) (int, error) {
	for n, e := range examples {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		err := cw.w.Write(e.Row())
		if err != nil {
			return n, fmt.Errorf("writing CSV row for example %d: %v", cw.count+1, err)
		}
		cw.count++
	}
	return len(examples), nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func trimFields(row []string) []string {
	result := make([]string, len(row))
	for i, v := range row {
		result[i] = strings.TrimSpace(v)
	}
	return result
}
