package sirsim

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// CSVLogger is a DataLogger that writes a trajectory's tally data as
// comma-delimited files, one per row kind. Grounded on the teacher's
// CSVLogger (csv_logger.go), re-pointed at prevalence/incidence/age-percent
// rows instead of genotype/transmission rows.
type CSVLogger struct {
	prevalencePath string
	incidencePath  string
	agePercentPath string
}

// NewCSVLogger creates a logger that writes data into CSV files rooted at
// basepath for trajectory i.
func NewCSVLogger(basepath string, i int) *CSVLogger {
	l := new(CSVLogger)
	l.SetBasePath(basepath, i)
	return l
}

// SetBasePath sets the base path of the logger.
func (l *CSVLogger) SetBasePath(basepath string, i int) {
	if info, err := os.Stat(basepath); err == nil && info.IsDir() {
		basepath += "log"
	}
	base := strings.TrimSuffix(basepath, ".")
	l.prevalencePath = fmt.Sprintf("%s.%03d.prevalence.csv", base, i)
	l.incidencePath = fmt.Sprintf("%s.%03d.incidence.csv", base, i)
	l.agePercentPath = fmt.Sprintf("%s.%03d.agepercent.csv", base, i)
}

// Init creates CSV files and writes header rows for each.
func (l *CSVLogger) Init() error {
	if err := newFile(l.prevalencePath, "run_id,channel,period,level\n"); err != nil {
		return err
	}
	if err := newFile(l.incidencePath, "run_id,channel,period,count\n"); err != nil {
		return err
	}
	if err := newFile(l.agePercentPath, "run_id,bucket,age_from,percent\n"); err != nil {
		return err
	}
	return nil
}

// WritePrevalence records a row per prevalence sample.
func (l *CSVLogger) WritePrevalence(c <-chan PrevalenceRow) {
	const template = "%s,%s,%d,%d\n"
	var b bytes.Buffer
	for row := range c {
		b.WriteString(fmt.Sprintf(template, row.RunID, row.Channel, row.Period, row.Level))
	}
	appendToFile(l.prevalencePath, b.Bytes())
}

// WriteIncidence records a row per incidence sample.
func (l *CSVLogger) WriteIncidence(c <-chan IncidenceRow) {
	const template = "%s,%s,%d,%d\n"
	var b bytes.Buffer
	for row := range c {
		b.WriteString(fmt.Sprintf(template, row.RunID, row.Channel, row.Period, row.Count))
	}
	appendToFile(l.incidencePath, b.Bytes())
}

// WriteAgePercent records a row per age bucket's final infection rate.
func (l *CSVLogger) WriteAgePercent(c <-chan AgePercentRow) {
	const template = "%s,%d,%d,%f\n"
	var b bytes.Buffer
	for row := range c {
		b.WriteString(fmt.Sprintf(template, row.RunID, row.Bucket, row.AgeFrom, row.Percent))
	}
	appendToFile(l.agePercentPath, b.Bytes())
}

// newFile creates a new file at path and writes header, failing if the
// file already exists.
func newFile(path, header string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(header)
	return err
}

// appendToFile creates path if it does not exist, or appends to the end
// of the existing file.
func appendToFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}
