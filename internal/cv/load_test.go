package cv

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `{
	"person": {"name": "Ada Example", "title": "Systems Engineer", "years": 12},
	"about": ["Builds terminals for fun."],
	"education": [{"school": "State University", "degree": "BSc CS", "period": "2008-2012"}],
	"experience": [{"company": "Acme", "role": "Engineer", "period": "2012-now", "notes": ["shipped things"]}],
	"skills": [{"name": "Languages", "items": ["Go", "C"]}],
	"projects": [{"name": "termcv", "description": "this thing", "url": "https://example.com"}],
	"links": [{"label": "github", "url": "https://github.com/ada"}]
}`

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCV), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Example", doc.Name())
	assert.Equal(t, "Systems Engineer", doc.PersonField("title"))
	assert.Equal(t, "12", doc.PersonField("years"))
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "State University", doc.Education[0].School)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, []string{"Go", "C"}, doc.Skills[0].Items)
}

func TestLoad_MissingSectionsAreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"about": ["hi"]}`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Links)
	assert.Equal(t, "anonymous", doc.Name())
	assert.Equal(t, "", doc.PersonField("title"))
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCV))
	}))
	defer srv.Close()

	doc, err := Load(srv.URL + "/cv.json")
	require.NoError(t, err)
	assert.Equal(t, "Ada Example", doc.Name())
}

func TestLoad_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(srv.URL + "/cv.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(`{nope`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse cv")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
