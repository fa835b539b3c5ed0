package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResumeJSON = `{
  "variant": "classic",
  "personal": {
    "first_name": "Ana Maria",
    "last_name": "Cruz",
    "email": "ana@example.com",
    "phone": "",
    "location": "Lisbon",
    "summary": "Backend engineer."
  },
  "experiences": [
    {
      "job_title": "Engineer",
      "company": "Acme",
      "location": "Remote",
      "start_date": "2020-01",
      "end_date": "2022-01",
      "current": true,
      "description": "Built the billing service."
    }
  ],
  "educations": null,
  "certifications": null,
  "skills": {"text": "Go, SQL"}
}`

// writeTempFile writes content to name inside a fresh temp directory.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the root command in-process with args. Flags not named in
// args keep the values of earlier runs, so tests pass every flag they rely on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}
