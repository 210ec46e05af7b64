package catalog

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCatalog = `# x y z px py pz wx wy wz
1.0 2.0 3.0 0.0 0.0 1.0 0.5 0.0 0.0
4.0 5.0 6.0 1.0 0.0 0.0 0.0 0.5 0.0
7.0 8.0 9.0 0.0 1.0 0.0 0.0 0.0 0.5
`

func writeTestCatalog(t *testing.T) string {
	dir, err := ioutil.TempDir("", "catalog_test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	file := path.Join(dir, "particles.txt")
	if err := ioutil.WriteFile(file, []byte(testCatalog), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestReadPositionsOnly(t *testing.T) {
	file := writeTestCatalog(t)

	ps, err := Read(file, []int{0, 1, 2}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 3, ps.Len())
	assert.Equal(t, []float64{1, 2, 3}, ps.Xs[0])
	assert.Equal(t, []float64{7, 8, 9}, ps.Xs[2])
	assert.Nil(t, ps.Orientations)
	assert.Nil(t, ps.Weights)
}

func TestReadFullSet(t *testing.T) {
	file := writeTestCatalog(t)

	ps, err := Read(
		file, []int{0, 1, 2}, []int{3, 4, 5}, []int{6, 7, 8},
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []float64{0, 0, 1}, ps.Orientations[0])
	assert.Equal(t, []float64{1, 0, 0}, ps.Orientations[1])
	assert.Equal(t, []float64{0, 0, 0.5}, ps.Weights[2])
}

func TestReadColumnMismatch(t *testing.T) {
	file := writeTestCatalog(t)

	_, err := Read(file, []int{0, 1, 2}, []int{3, 4}, nil)
	assert.Error(t, err, "orientation column count mismatch")

	_, err = Read(file, nil, nil, nil)
	assert.Error(t, err, "no position columns")
}
