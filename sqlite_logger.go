package sirsim

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteLogger is a DataLogger that writes a trajectory's tally data to a
// SQLite database, one table per row kind. Grounded on the teacher's
// SQLiteLogger (sqlite_logger.go), re-pointed at prevalence/incidence/
// age-percent rows instead of genotype/transmission rows.
type SQLiteLogger struct {
	path       string
	instanceID int
}

// NewSQLiteLogger creates a logger that writes to a SQLite database rooted
// at basepath for trajectory i.
func NewSQLiteLogger(basepath string, i int) *SQLiteLogger {
	l := new(SQLiteLogger)
	l.SetBasePath(basepath, i)
	return l
}

// SetBasePath sets the base path of the logger.
func (l *SQLiteLogger) SetBasePath(basepath string, i int) {
	if info, err := os.Stat(basepath); err == nil && info.IsDir() {
		basepath += fmt.Sprintf("log.%03d", i)
	}
	l.path = strings.TrimSuffix(basepath, ".") + ".db"
	l.instanceID = i
}

// Init creates the Prevalence, Incidence, and AgePercent tables for this
// trajectory's instance.
func (l *SQLiteLogger) Init() error {
	db, err := openSQLiteDB(l.path)
	if err != nil {
		return err
	}
	defer db.Close()

	newTable := func(tableName, cols string) error {
		fullName := fmt.Sprintf("%s%03d", tableName, l.instanceID)
		stmt := fmt.Sprintf("create table %s %s; delete from %s;", fullName, cols, fullName)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%q: %s", err, stmt)
		}
		return nil
	}

	if err := newTable("Prevalence", "(id integer not null primary key, run_id text, channel text, period int, level int)"); err != nil {
		return err
	}
	if err := newTable("Incidence", "(id integer not null primary key, run_id text, channel text, period int, count int)"); err != nil {
		return err
	}
	if err := newTable("AgePercent", "(id integer not null primary key, run_id text, bucket int, age_from int, percent real)"); err != nil {
		return err
	}
	return nil
}

// WritePrevalence inserts a row per prevalence sample inside a single
// transaction.
func (l *SQLiteLogger) WritePrevalence(c <-chan PrevalenceRow) {
	table := fmt.Sprintf("Prevalence%03d", l.instanceID)
	l.insertRows(table, "run_id, channel, period, level", func(stmt *sql.Stmt) {
		for row := range c {
			if _, err := stmt.Exec(row.RunID, row.Channel, row.Period, row.Level); err != nil {
				log.Fatal(err)
			}
		}
	})
}

// WriteIncidence inserts a row per incidence sample inside a single
// transaction.
func (l *SQLiteLogger) WriteIncidence(c <-chan IncidenceRow) {
	table := fmt.Sprintf("Incidence%03d", l.instanceID)
	l.insertRows(table, "run_id, channel, period, count", func(stmt *sql.Stmt) {
		for row := range c {
			if _, err := stmt.Exec(row.RunID, row.Channel, row.Period, row.Count); err != nil {
				log.Fatal(err)
			}
		}
	})
}

// WriteAgePercent inserts a row per age bucket's final infection rate
// inside a single transaction.
func (l *SQLiteLogger) WriteAgePercent(c <-chan AgePercentRow) {
	table := fmt.Sprintf("AgePercent%03d", l.instanceID)
	l.insertRows(table, "run_id, bucket, age_from, percent", func(stmt *sql.Stmt) {
		for row := range c {
			if _, err := stmt.Exec(row.RunID, row.Bucket, row.AgeFrom, row.Percent); err != nil {
				log.Fatal(err)
			}
		}
	})
}

// insertRows opens the database, begins a transaction, prepares an insert
// statement for table over cols, runs exec against it, and commits.
func (l *SQLiteLogger) insertRows(table, cols string, exec func(*sql.Stmt)) {
	db, err := openSQLiteDB(l.path)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
		return
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", strings.Count(cols, ",")+1), ",")
	stmt, err := tx.Prepare(fmt.Sprintf("insert into %s(%s) values(%s)", table, cols, placeholders))
	if err != nil {
		log.Fatal(err)
		return
	}
	defer stmt.Close()

	exec(stmt)

	tx.Commit()
}

// openSQLiteDB establishes a connection using WAL and exclusive locking,
// as the teacher's OpenSQLiteDBOptimized does.
func openSQLiteDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL", path)
	return sql.Open("sqlite3", dsn)
}
