package poeditor

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProjectRequest_Parts(t *testing.T) {
	req := UploadProjectRequest{
		ID:           9,
		Updating:     UpdateTermsTranslations,
		File:         "/data/sv.po",
		Language:     "sv",
		Overwrite:    BoolPtr(true),
		Tags:         &UploadTags{List: []string{"a", "b"}},
		FuzzyTrigger: BoolPtr(false),
	}

	parts, err := req.parts()
	require.NoError(t, err)

	var names []string
	values := map[string]string{}
	for _, p := range parts {
		names = append(names, p.name)
		if !p.file {
			values[p.name] = p.value
		}
	}

	assert.Equal(t, []string{"id", "updating", "file", "language", "overwrite", "tags", "fuzzy_trigger"}, names)
	assert.Equal(t, "9", values["id"])
	assert.Equal(t, "terms_translations", values["updating"])
	assert.Equal(t, "1", values["overwrite"])
	assert.Equal(t, `["a","b"]`, values["tags"])
	assert.Equal(t, "0", values["fuzzy_trigger"])
}

func TestClient_UploadProject(t *testing.T) {
	const content = `msgid "hello"` + "\n" + `msgstr "hej"` + "\n"

	var (
		gotValues map[string][]string
		gotFile   string
		gotName   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotValues = r.MultipartForm.Value
		require.Len(t, r.MultipartForm.File["file"], 1)
		fh := r.MultipartForm.File["file"][0]
		gotName = fh.Filename
		f, err := fh.Open()
		require.NoError(t, err)
		defer f.Close()
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		gotFile = string(b)

		w.Write([]byte(`{"response":{"status":"success","code":"200","message":"OK"},
			"result":{"terms":{"parsed":2,"added":2,"deleted":0},"translations":{"parsed":2,"added":1,"updated":0}}}`))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/sv.po", []byte(content), 0o644))

	client, err := New(Config{BaseURL: srv.URL, APIToken: testToken, Fs: fs, Logger: hclog.NewNullLogger()})
	require.NoError(t, err)

	stats, err := client.UploadProject(context.Background(), UploadProjectRequest{
		ID:       9,
		Updating: UpdateTermsTranslations,
		File:     "/data/sv.po",
		Tags:     &UploadTags{List: []string{"a", "b"}},
	})
	require.NoError(t, err)

	require.NotNil(t, stats.Terms)
	require.NotNil(t, stats.Translations)
	assert.Equal(t, UpdateStatisticsObject{Parsed: 2, Added: 2}, *stats.Terms)
	assert.Equal(t, UpdateStatisticsObject{Parsed: 2, Added: 1}, *stats.Translations)

	assert.Equal(t, content, gotFile)
	assert.Equal(t, "sv.po", gotName)
	assert.Equal(t, []string{testToken}, gotValues["api_token"])
	assert.Equal(t, []string{"9"}, gotValues["id"])
	assert.Equal(t, []string{"terms_translations"}, gotValues["updating"])
	assert.Equal(t, []string{`["a","b"]`}, gotValues["tags"])
	for _, unset := range []string{"language", "overwrite", "sync_terms", "read_from_source", "fuzzy_trigger"} {
		assert.NotContains(t, gotValues, unset)
	}
}

func TestClient_UploadProject_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.Write([]byte(`{"response":{"status":"fail","code":"4048","message":"Language not found"}}`))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "en.json", []byte(`{}`), 0o644))

	client, err := New(Config{BaseURL: srv.URL, APIToken: testToken, Fs: fs})
	require.NoError(t, err)

	_, err = client.UploadProject(context.Background(), UploadProjectRequest{ID: 1, Updating: UpdateTranslations, File: "en.json", Language: "xx"})
	require.Error(t, err)
	assert.Equal(t, "Language not found", err.Error())
}

func TestClient_UploadProject_MissingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the file cannot be opened")
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, APIToken: testToken, Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	_, err = client.UploadProject(context.Background(), UploadProjectRequest{ID: 1, Updating: UpdateTerms, File: "/missing.po"})
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "/projects/upload", transportErr.Path)
}
