package csvfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/ladle/pkg/types"
)

// writeInput writes a CSV fixture and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const teaCSV = `id,name,description,ingredients,minutes,steps,nutrition
1,Tea,a hot drink,"['water','tea leaves']",5,"['boil water','steep leaves']","[10.0, 0.0]"
`

func TestReadSingleRow(t *testing.T) {
	r, err := Open(writeInput(t, teaCSV))
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "Tea", rec.Name)
	assert.Equal(t, "a hot drink", rec.Description)
	assert.Equal(t, []string{"water", "tea leaves"}, rec.Ingredients)
	assert.Equal(t, 5, rec.Minutes)
	assert.Equal(t, []string{"boil water", "steep leaves"}, rec.Steps)
	assert.Equal(t, []float64{10.0, 0.0}, rec.Nutrition)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 1, r.Row())
}

func TestColumnsMatchedByHeaderName(t *testing.T) {
	// Same data with shuffled columns and an extra one.
	csv := `minutes,extra,name,nutrition,id,steps,description,ingredients
5,ignored,Tea,"[10.0, 0.0]",1,"['boil water']",a hot drink,"['water']"
`
	r, err := Open(writeInput(t, csv))
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "Tea", rec.Name)
	assert.Equal(t, []string{"water"}, rec.Ingredients)
	assert.Equal(t, 5, rec.Minutes)
}

func TestMissingColumn(t *testing.T) {
	csv := `id,name,description,minutes,steps,nutrition
1,Tea,a hot drink,5,"['boil water']","[10.0]"
`
	_, err := Open(writeInput(t, csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingColumn))
	assert.Contains(t, err.Error(), "ingredients")
}

func TestMalformedID(t *testing.T) {
	csv := `id,name,description,ingredients,minutes,steps,nutrition
oops,Tea,a hot drink,"['water']",5,"['boil water']","[10.0]"
`
	r, err := Open(writeInput(t, csv))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedRow))
	assert.Contains(t, err.Error(), "row 1")
}

func TestMalformedMinutes(t *testing.T) {
	csv := `id,name,description,ingredients,minutes,steps,nutrition
1,Tea,a hot drink,"['water']",fast,"['boil water']","[10.0]"
`
	r, err := Open(writeInput(t, csv))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedRow))
}

func TestMalformedNutrition(t *testing.T) {
	csv := `id,name,description,ingredients,minutes,steps,nutrition
1,Tea,a hot drink,"['water']",5,"['boil water']","[10.0, x]"
`
	r, err := Open(writeInput(t, csv))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedNumber))
}

func TestShortRowIsMalformed(t *testing.T) {
	csv := `id,name,description,ingredients,minutes,steps,nutrition
1,Tea,a hot drink
`
	r, err := Open(writeInput(t, csv))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedRow))
}
