package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	step := []Step{{Uses: "actions/checkout@v3"}}

	testCases := []struct {
		name    string
		jobs    []Job
		wantErr string
	}{
		{
			name: "valid document",
			jobs: []Job{
				{ID: "linux", RunsOn: "ubuntu-latest", Steps: step},
				{ID: "sdist", RunsOn: "ubuntu-latest", Steps: step},
				{ID: "release", RunsOn: "ubuntu-latest", Needs: []string{"linux", "sdist"}, Steps: step},
			},
		},
		{
			name:    "no jobs",
			wantErr: "no jobs",
		},
		{
			name:    "empty id",
			jobs:    []Job{{RunsOn: "ubuntu-latest", Steps: step}},
			wantErr: "job with empty id",
		},
		{
			name: "duplicate id",
			jobs: []Job{
				{ID: "linux", RunsOn: "ubuntu-latest", Steps: step},
				{ID: "linux", RunsOn: "ubuntu-latest", Steps: step},
			},
			wantErr: `duplicate job "linux"`,
		},
		{
			name:    "missing runner",
			jobs:    []Job{{ID: "linux", Steps: step}},
			wantErr: `job "linux" has no runner`,
		},
		{
			name:    "no steps",
			jobs:    []Job{{ID: "linux", RunsOn: "ubuntu-latest"}},
			wantErr: `job "linux" has no steps`,
		},
		{
			name: "needs a later job",
			jobs: []Job{
				{ID: "release", RunsOn: "ubuntu-latest", Needs: []string{"linux"}, Steps: step},
				{ID: "linux", RunsOn: "ubuntu-latest", Steps: step},
			},
			wantErr: `job "release" needs "linux", which is not emitted before it`,
		},
		{
			name:    "needs itself",
			jobs:    []Job{{ID: "linux", RunsOn: "ubuntu-latest", Needs: []string{"linux"}, Steps: step}},
			wantErr: "self-referential edge",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := &Document{Jobs: tc.jobs}
			err := doc.Validate()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := sampleDocument()

	assert.Equal(t, []string{"linux", "release"}, doc.JobIDs())

	job, ok := doc.Job("release")
	assert.True(t, ok)
	assert.Equal(t, "Release", job.Name)

	_, ok = doc.Job("windows")
	assert.False(t, ok)
}
