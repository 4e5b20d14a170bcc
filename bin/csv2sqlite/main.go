package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// csv2sqlite merges the per-trajectory CSV output of the CSV logger
// (prevalence/incidence/agepercent files) into a single SQLite database,
// one table per content type shared by every trajectory, whose rows are
// told apart by their run_id column. Grounded on the
// teacher's bin/csv2sqlite/main.go, re-pointed at the SIR row schema.
func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "location where to create the sqlite3 file (required)")
	var skipPrevalence bool
	flag.BoolVar(&skipPrevalence, "skip_prevalence", false, "skip Prevalence tables")
	var skipIncidence bool
	flag.BoolVar(&skipIncidence, "skip_incidence", false, "skip Incidence tables")
	var skipAgePercent bool
	flag.BoolVar(&skipAgePercent, "skip_agepercent", false, "skip AgePercent tables")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("CSV basepath was not specified!")
		flag.Usage()
		return
	}
	if outPath == "" {
		fmt.Println("-out was not specified")
		return
	}

	var csvDirPaths []string
	for c := 0; c < flag.NArg(); c++ {
		csvDirPaths = append(csvDirPaths, filepath.Clean(flag.Arg(c)))
	}

	db, err := openSQLiteDBOptimized(outPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	tableNameMap := map[string]string{
		"prevalence": "Prevalence",
		"incidence":  "Incidence",
		"agepercent": "AgePercent",
	}
	columnNameMap := map[string]string{
		"prevalence": "(id integer not null primary key, run_id text, channel text, period int, level int)",
		"incidence":  "(id integer not null primary key, run_id text, channel text, period int, count int)",
		"agepercent": "(id integer not null primary key, run_id text, bucket int, age_from int, percent real)",
	}
	insertStmtMap := map[string]string{
		"prevalence": "insert into %s (run_id, channel, period, level) values(?, ?, ?, ?)",
		"incidence":  "insert into %s (run_id, channel, period, count) values(?, ?, ?, ?)",
		"agepercent": "insert into %s (run_id, bucket, age_from, percent) values(?, ?, ?, ?)",
	}

	fileCounter := 0
	startTime := time.Now()
	splitter := regexp.MustCompile(`\s*,\s*`)

	for _, csvDirPath := range csvDirPaths {
		globString := filepath.Join(csvDirPath, "*.csv")
		csvPaths, err := filepath.Glob(globString)
		if err != nil {
			panic(err)
		}
		if len(csvPaths) < 1 {
			log.Fatalf("%s did not return any matches", globString)
		}

		for _, csvPath := range csvPaths {
			f, err := os.Open(csvPath)
			if err != nil {
				panic(err)
			}

			_, csvFilename := filepath.Split(csvPath)
			splitName := strings.Split(csvFilename, ".")
			contentType := splitName[len(splitName)-2]

			tableName := tableNameMap[contentType]
			switch {
			case tableName == "Prevalence" && skipPrevalence:
				f.Close()
				continue
			case tableName == "Incidence" && skipIncidence:
				f.Close()
				continue
			case tableName == "AgePercent" && skipAgePercent:
				f.Close()
				continue
			case tableName == "":
				f.Close()
				continue
			}
			columnNames := columnNameMap[contentType]
			insertStmt := fmt.Sprintf(insertStmtMap[contentType], tableName)

			scanner := bufio.NewScanner(f)

			tx, err := db.Begin()
			if err != nil {
				panic(err)
			}
			createStmt := fmt.Sprintf("create table if not exists %s %s;", tableName, columnNames)
			if _, err := tx.Exec(createStmt); err != nil {
				log.Fatalf("%q: %s", err, createStmt)
			}

			// Skip the header row.
			scanner.Scan()

			stmt, err := tx.Prepare(insertStmt)
			if err != nil {
				panic(err)
			}
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				stringValues := splitter.Split(line, -1)
				values := make([]interface{}, len(stringValues))
				for i, v := range stringValues {
					values[i] = v
				}
				if _, err := stmt.Exec(values...); err != nil {
					panic(fmt.Sprintln(err, stringValues))
				}
			}
			stmt.Close()
			tx.Commit()

			fmt.Printf("%s, committed.\n", csvFilename)
			f.Close()
			fileCounter++
		}
	}
	elapsed := time.Since(startTime)

	fmt.Println("Finished.")
	fmt.Printf("Merged %d files in %v\n", fileCounter, elapsed)
}

func openSQLiteDBOptimized(path string) (*sql.DB, error) {
	return openSQLiteDB(path, "?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL")
}

func openSQLiteDB(path, connectionString string) (*sql.DB, error) {
	dsn := "file:%s%s"
	return sql.Open("sqlite3", fmt.Sprintf(dsn, path, connectionString))
}
