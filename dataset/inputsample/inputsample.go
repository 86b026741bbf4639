/*
Package inputsample provides an implementation of feature.Sample whose
values are read from an io.Reader as they are needed.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jonathanhungc/id3/feature"
)

type readSample struct {
	obtainedValues map[int]string
	scanner        *bufio.Scanner
	valueRequester ValueRequester
	validValues    map[string][]string
}

/*
ValueRequester represents a way to ask
for attribute values and reject the given values.
*/
type ValueRequester interface {
	RequestValueFor(a feature.Attribute, validValues []string) error
	RejectValueFor(a feature.Attribute, value string, validValues []string) error
}

/*
New takes an io.Reader, a ValueRequester and a map from attribute names to
the values they may take, and returns a feature.Sample.

The returned Sample ValueFor method reads an attribute value the first time
it is asked for, requesting it with the given ValueRequester and then
reading a line from the reader. Surrounding whitespace is trimmed from the
line. For attributes with an entry on validValues, lines are read until one
holding a valid value is found, rejecting the rest with the
ValueRequester's RejectValueFor method. Later calls for the same attribute
return the value already read.
*/
func New(r io.Reader, valueRequester ValueRequester, validValues map[string][]string) feature.Sample {
	return &readSample{make(map[int]string), bufio.NewScanner(r), valueRequester, validValues}
}

func (rs *readSample) ValueFor(a feature.Attribute) (string, error) {
	value, ok := rs.obtainedValues[a.Index()]
	if ok {
		return value, nil
	}
	valid := rs.validValues[a.Name()]
	err := rs.valueRequester.RequestValueFor(a, valid)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		if len(valid) == 0 || contains(valid, line) {
			rs.obtainedValues[a.Index()] = line
			return line, nil
		}
		err = rs.valueRequester.RejectValueFor(a, line, valid)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", a.Name())
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
