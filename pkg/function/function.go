// Package function detects naive "function call" requests in model replies
// and runs the matching local function.
package function

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	GetTime    = "get_time"
	AddNumbers = "add_numbers"
)

// Kind tags a parse Result.
type Kind int

const (
	NoCall Kind = iota
	Call
)

// Result is the outcome of scanning a reply. Args is nil when the function
// was named but its arguments could not be read.
type Result struct {
	Kind Kind
	Name string
	Args []int
}

var addNumbersPattern = regexp.MustCompile(`add_numbers\((\d+),\s*(\d+)\)`)

// Parse scans reply for a known function name, case-insensitively.
// get_time takes precedence when both names appear.
func Parse(reply string) Result {
	reply = strings.ToLower(reply)

	switch {
	case strings.Contains(reply, GetTime):
		return Result{Kind: Call, Name: GetTime}
	case strings.Contains(reply, AddNumbers):
		r := Result{Kind: Call, Name: AddNumbers}
		m := addNumbersPattern.FindStringSubmatch(reply)
		if m == nil {
			return r
		}
		a, errA := strconv.Atoi(m[1])
		b, errB := strconv.Atoi(m[2])
		if errA != nil || errB != nil {
			return r
		}
		r.Args = []int{a, b}
		return r
	}

	return Result{Kind: NoCall}
}

// Dispatcher runs parsed calls against the local functions.
type Dispatcher struct {
	// Now is the clock used by get_time; time.Now when nil.
	Now func() time.Time
}

// Dispatch returns the printable result of r and whether anything ran.
func (d *Dispatcher) Dispatch(r Result) (string, bool) {
	if r.Kind != Call {
		return "", false
	}

	switch r.Name {
	case GetTime:
		now := time.Now
		if d != nil && d.Now != nil {
			now = d.Now
		}
		return "Current time is: " + now().Format("15:04:05"), true
	case AddNumbers:
		if len(r.Args) != 2 {
			return "Couldn't parse numbers for add_numbers.", true
		}
		return fmt.Sprintf("Sum: %d", r.Args[0]+r.Args[1]), true
	}

	return "", false
}
