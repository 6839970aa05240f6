package cmd_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/pepl/cmd"
)

const scriptDir = "testdata"

// Expectations annotate the line that follows them.
var (
	expectedOutputPattern = regexp.MustCompile(`^# expect: ?(.*)$`)
	expectedErrorPattern  = regexp.MustCompile(`^# expect error: (.+)$`)
	reportedErrorPattern  = regexp.MustCompile(`^ERROR \[line (\d+)\] (.+)$`)
)

type expectedOutput struct {
	line   int
	output string
}

type scriptTest struct {
	t                *testing.T
	path             string
	expectedOutput   []expectedOutput
	expectedErrors   map[string]string
	expectedExitCode int
}

func TestScripts(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join(scriptDir, "*.pepl"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			test := &scriptTest{t: t, path: path, expectedErrors: make(map[string]string)}
			test.parse()
			test.run()
		})
	}
}

func (s *scriptTest) parse() {
	data, err := os.ReadFile(s.path)
	require.NoError(s.t, err)

	for lineNum, line := range strings.Split(string(data), "\n") {
		lineNum++

		if match := expectedErrorPattern.FindStringSubmatch(line); match != nil {
			msg := fmt.Sprintf("[%d] %s", lineNum+1, match[1])
			s.expectedErrors[msg] = msg
			s.expectedExitCode = 64
			continue
		}

		if match := expectedOutputPattern.FindStringSubmatch(line); match != nil {
			s.expectedOutput = append(s.expectedOutput, expectedOutput{line: lineNum + 1, output: match[1]})
		}
	}
}

func (s *scriptTest) run() {
	var stdout, stderr bytes.Buffer
	app := cmd.NewPeplApp(&stdout, &stderr)
	exitCode := app.Main([]string{s.path})

	s.validateErrors(strings.Split(stderr.String(), "\n"))
	s.validateOutput(strings.Split(stdout.String(), "\n"))
	assert.Equal(s.t, s.expectedExitCode, exitCode, "exit code, stderr: %s", stderr.String())
}

func (s *scriptTest) validateErrors(errorLines []string) {
	found := map[string]bool{}
	for _, line := range errorLines {
		if line == "" {
			continue
		}
		match := reportedErrorPattern.FindStringSubmatch(line)
		if match == nil {
			s.t.Errorf("Unexpected output on stderr: %s", line)
			continue
		}
		msg := fmt.Sprintf("[%s] %s", match[1], match[2])
		if _, ok := s.expectedErrors[msg]; !ok {
			s.t.Errorf("Unexpected error: %s", line)
			continue
		}
		found[msg] = true
	}

	missing := maps.Keys(s.expectedErrors)
	missing = slices.DeleteFunc(missing, func(msg string) bool { return found[msg] })
	slices.Sort(missing)
	assert.Empty(s.t, missing, "missing expected errors")
}

func (s *scriptTest) validateOutput(outputLines []string) {
	if len(outputLines) > 0 && outputLines[len(outputLines)-1] == "" {
		outputLines = outputLines[:len(outputLines)-1]
	}

	if len(outputLines) > len(s.expectedOutput) {
		s.t.Errorf("Got output '%s' when none was expected.", outputLines[len(s.expectedOutput)])
		return
	}

	for i, line := range outputLines {
		expected := s.expectedOutput[i]
		if expected.output != line {
			s.t.Errorf("Expected output '%s' on line %d and got '%s'.", expected.output, expected.line, line)
		}
	}

	for i := len(outputLines); i < len(s.expectedOutput); i++ {
		expected := s.expectedOutput[i]
		s.t.Errorf("Missing expected output '%s' on line %d.", expected.output, expected.line)
	}
}
