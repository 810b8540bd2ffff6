package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/primefold/truncprime"
)

func reportD3() *truncprime.Report {
	return &truncprime.Report{
		Digits: 3,
		Lengths: []truncprime.LengthCount{
			{Digits: 1, Truncatable: 4, Primes: 4},
			{Digits: 2, Truncatable: 9, Primes: 21},
			{Digits: 3, Truncatable: 14, Primes: 143},
		},
		Truncatable: 27,
		Primes:      168,
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, reportD3(), false)

	want := "Number of 3-digit right-truncatable primes: 14 (n = 143)\n" +
		"Number of 2-digit right-truncatable primes: 9 (n = 21)\n" +
		"Number of 1-digit right-truncatable primes: 4 (n = 4)\n" +
		"\n" +
		"Total number of right-truncatable primes up to 3 digits: 27 (n = 168)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintReportCommas(t *testing.T) {
	rep := &truncprime.Report{
		Digits: 8,
		Lengths: []truncprime.LengthCount{
			{Digits: 8, Truncatable: 5, Primes: 5_096_876},
		},
		Truncatable: 83,
		Primes:      5_761_455,
	}

	var buf bytes.Buffer
	printReport(&buf, rep, true)

	assert.Contains(t, buf.String(), "(n = 5,096,876)")
	assert.Contains(t, buf.String(), "(n = 5,761,455)")
}

func TestPrintElapsed(t *testing.T) {
	var buf bytes.Buffer
	printElapsed(&buf, 1234567890*time.Nanosecond)

	want := "\nExecution time: 1234.568 milliseconds\n" +
		"Execution time: 1234567.890 microseconds\n" +
		"Execution time: 1234567890 nanoseconds\n"
	assert.Equal(t, want, buf.String())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"off", "text", "json"} {
		logger, err := newLogger(format, false)
		assert.NoError(t, err, format)
		assert.NotNil(t, logger, format)
	}

	_, err := newLogger("xml", false)
	assert.Error(t, err)
}
