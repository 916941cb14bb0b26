package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "train.csv", "id,source,target\n1,ասոմ,ասում\n2,,\n3,\"գնմ, եմ\",\"գնում, եմ\"\n")

	cols, err := LoadCSV(path, "target", "source")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ասում", "գնում, եմ"}, {"ասոմ", "գնմ, եմ"}}, cols)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.csv", "a,b\n1,2\n")
	_, err := LoadCSV(path, "target")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", "")
	cols, err := LoadCSV(path, "target")
	require.NoError(t, err)
	assert.Equal(t, [][]string{nil}, cols)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), "target")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadGroupColumnOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "train_arpa.csv", "Sentence1,Sentence2\nա1,բ1\nա2,բ2\n")
	b := writeFile(t, dir, "test_arpa.csv", "Sentence1,Sentence2\nա3,բ3\n")

	got, err := LoadGroup(Group{Paths: []string{a, b}, Columns: []string{"Sentence1", "Sentence2"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ա1", "ա2", "ա3", "բ1", "բ2", "բ3"}, got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", "target\nմեկ\n")
	arpa := writeFile(t, dir, "arpa.csv", "Sentence1,Sentence2\nերկու,երեք\n")
	txt := writeFile(t, dir, "extra.txt", "չորս\nհինգ")

	got, err := Load([]Group{
		{Paths: []string{train}, Columns: []string{"target"}},
		{Paths: []string{arpa}, Columns: []string{"Sentence1", "Sentence2"}},
	}, []string{txt})
	require.NoError(t, err)
	assert.Equal(t, "մեկ երկու երեք չորս\nհինգ", got)
}
