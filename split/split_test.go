package split_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const articleURL = "https://support.example.com/hc/en-us/articles"

// accountsDocument has an INTRODUCTION preamble and one ACCOUNTS category
// with a header row and two data rows, followed by a link without an
// article identifier.
const accountsDocument = `<html><body>
<h2 id="introduction">INTRODUCTION</h2>
<p>Welcome. <a href="https://support.example.com/hc/en-us/articles/999-Intro">Intro</a></p>
<h2 id="accounts">ACCOUNTS</h2>
<table>
<tr><th>No.</th><th>Endpoint</th><th>Details</th></tr>
<tr><td>1</td><td>/auth/login</td><td><a href="https://support.example.com/hc/en-us/articles/111-Login">Login (POST)</a></td></tr>
<tr><td>2</td><td>/auth/logout</td><td><a href="https://support.example.com/hc/en-us/articles/222-Logout">Logout</a></td></tr>
</table>
<p><a href="https://example.com/changelog">Changelog</a></p>
</body></html>`

// listFiles returns the sorted names of the files in dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readFile(t *testing.T, path ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(data)
}
