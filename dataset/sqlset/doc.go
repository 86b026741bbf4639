/*
Package sqlset reads example sets from and writes them to SQL
databases.

Examples are stored on a single table named examples, with a
TEXT column per attribute and one for the label, plus an id
column that keeps the order in which they were written.
*/
package sqlset
