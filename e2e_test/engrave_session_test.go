//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jsphweid/tonality/cmd"
	"github.com/jsphweid/tonality/constants"
	"github.com/jsphweid/tonality/db"
	"github.com/jsphweid/tonality/metrics"
	"github.com/jsphweid/tonality/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var server *httptest.Server

// TestMain serves the API against DynamoDB when DYNAMO_ENDPOINT is set
// (e.g. DynamoDB Local with the scale table created) and memory otherwise.
func TestMain(m *testing.M) {
	store, err := db.NewStore(db.Config{
		Endpoint: constants.GetDynamoEndpoint(),
		Region:   constants.GetDynamoRegion(),
		Table:    constants.GetScaleTable(),
	})
	if err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(cmd.NewRouter(store, cmd.NewSessions(time.Minute), metrics.NewSentryMetrics(false)))

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func send(t *testing.T, method, path string, body, res any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if res != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
	}
	return resp.StatusCode
}

func TestSavedScaleE2E(t *testing.T) {
	assert := assert.New(t)

	body := map[string]string{"scale": "1 m2 j3 4 5 m6 m7"}
	assert.Equal(http.StatusOK, send(t, "PUT", "/scales/phrygian-dominant", body, nil))

	var res model.ScaleResponse
	require.Equal(t, http.StatusOK, send(t, "GET", "/scales/phrygian-dominant?root=E4", nil, &res))
	var names []string
	for _, p := range res.Pitches {
		names = append(names, p.String())
	}
	assert.Equal([]string{"E4", "F4", "G#4", "A4", "B4", "C5", "D5", "E5"}, names)

	var list model.ScaleListResponse
	require.Equal(t, http.StatusOK, send(t, "GET", "/scales", nil, &list))
	assert.Contains(list.Scales, "phrygian-dominant")
}

func TestEngraveSessionE2E(t *testing.T) {
	assert := assert.New(t)

	var session model.SessionResponse
	require.Equal(t, http.StatusCreated, send(t, "POST", "/sessions", map[string]string{"key": "g minor"}, &session))
	assert.Equal("Bb Eb", session.Key)
	base := "/sessions/" + session.Id

	bars := [][]string{
		{"G4", "A4", "Bb4", "B4", "C5", "D5", "Eb5", "F#5"},
		{"G5", "F#5", "F5", "Eb5", "D5", "B4", "Bb4", "A4"},
	}
	want := [][]string{
		{"", "", "", "n", "", "", "", "#"},
		{"", "#", "n", "", "", "n", "b", ""},
	}
	for n, bar := range bars {
		var res model.MarksResponse
		require.Equal(t, http.StatusOK, send(t, "POST", base+"/pitches", map[string][]string{"pitches": bar}, &res))
		var marks []string
		for _, m := range res.Marks {
			marks = append(marks, m.Mark)
		}
		assert.Equal(want[n], marks, "bar %d", n+1)
		assert.Equal(http.StatusNoContent, send(t, "POST", base+"/barline", nil, nil))
	}

	assert.Equal(http.StatusNoContent, send(t, "DELETE", base, nil, nil))
}
