package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (stdout, stderr string) {
	var out, errOut bytes.Buffer
	run(args, &out, &errOut)
	return out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	csvPath := writeFile(t, "prices.csv", "Year,Month,A,B,C\n1990,Jan,10,12,22\n1991,Mar,9,18,20\n1992,Dec,14,16,21\n")
	junkPath := writeFile(t, "junk.csv", "Year,Month,A\n1990,Jan,5\nnot,a,row,at all\n")
	emptyPath := writeFile(t, "empty.csv", "Year,Month,A\n1990,Jan,n/a\n")
	commentsPath := writeFile(t, "comments.csv", "# a\n# b\n")
	dir := t.TempDir()

	absCSV, err := filepath.Abs(csvPath)
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no argument",
			args: nil,
			want: "Unable to proceed : Please Specify csv file path\n",
		},
		{
			name: "valid file",
			args: []string{csvPath},
			want: "Displaying max share prices from file : " + absCSV + "\n" +
				"A : 14.0 on Dec,1992\nB : 18.0 on Mar,1991\nC : 22.0 on Jan,1990\n",
		},
		{
			name: "extra arguments are ignored",
			args: []string{csvPath, "other.csv"},
			want: "Displaying max share prices from file : " + absCSV + "\n" +
				"A : 14.0 on Dec,1992\nB : 18.0 on Mar,1991\nC : 22.0 on Jan,1990\n",
		},
		{
			name: "directory",
			args: []string{dir},
			want: "Unable to proceed, the given file path refers to a directory\n",
		},
		{
			name: "no data",
			args: []string{emptyPath},
			want: "Junk data found while reading the file, Please check contents\n" +
				"Unable to proceed, no data to display\n",
		},
		{
			name: "only comments",
			args: []string{commentsPath},
			want: "Unable to proceed, unable to read headers from file, check format\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := runCLI(tt.args...)
			assert.Equal(t, tt.want, stdout)
		})
	}

	t.Run("junk warning comes first", func(t *testing.T) {
		stdout, _ := runCLI(junkPath)
		lines := strings.Split(stdout, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.Equal(t, "Junk data found while reading the file, Please check contents", lines[0])
		assert.Equal(t, "A : 5.0 on Jan,1990", lines[2])
	})
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "aFileThatDoesNotExist")

	stdout, _ := runCLI(missing)
	assert.Equal(t, "Unable to proceed, unable to read file: "+missing+"\n", stdout)
}

func TestRunWithConfig(t *testing.T) {
	csvPath := writeFile(t, "prices.csv", "-- header\nYear;Month;A\n1990;Jan;7.5\n")
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")
	configPath := writeFile(t, "config.yaml", "reader:\n  comment: \"--\"\n  separator: \";\"\nlogging:\n  file: "+logPath+"\n")

	stdout, stderr := runCLI("-config", configPath, "-debug", csvPath)
	assert.Contains(t, stdout, "A : 7.5 on Jan,1990\n")
	assert.Contains(t, stderr, "Performance Report")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "header found on line 2")
}

func TestRunDefaultConfig(t *testing.T) {
	csvPath := writeFile(t, "prices.csv", "Year;Month;A\n1990;Jan;3\n")

	saved := defaultConfigPath
	t.Cleanup(func() { defaultConfigPath = saved })

	defaultConfigPath = writeFile(t, "config.yaml", "reader:\n  separator: \";\"\n")
	stdout, _ := runCLI(csvPath)
	assert.Contains(t, stdout, "A : 3.0 on Jan,1990\n")

	defaultConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	stdout, _ = runCLI(csvPath)
	assert.Equal(t, "Unable to proceed, unable to read headers from file, check format\n", stdout)
}

func TestRunBadConfig(t *testing.T) {
	csvPath := writeFile(t, "prices.csv", "Year,Month,A\n1990,Jan,1\n")
	configPath := writeFile(t, "config.yaml", "logging:\n  level: loud\n")

	stdout, _ := runCLI("-config", configPath, csvPath)
	assert.True(t, strings.HasPrefix(stdout, "Unable to proceed, invalid config"))
}
