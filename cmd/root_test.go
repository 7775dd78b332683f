package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriLingo/internal/share"
)

func TestSeedFromFlags(t *testing.T) {
	t.Cleanup(func() {
		seedFlags.text, seedFlags.source, seedFlags.target, seedFlags.link = "", "", "", ""
	})

	seedFlags.link = "http://localhost:5000/?text=Bonjour&source=fr&target=en"
	p, err := seedFromFlags()
	require.NoError(t, err)
	assert.Equal(t, share.Params{Text: "Bonjour", Source: "fr", Target: "en"}, p)

	seedFlags.target = "DE"
	seedFlags.text = "Salut"
	p, err = seedFromFlags()
	require.NoError(t, err)
	assert.Equal(t, share.Params{Text: "Salut", Source: "fr", Target: "de"}, p)

	seedFlags.link = ""
	seedFlags.source = "xx"
	p, err = seedFromFlags()
	require.NoError(t, err)
	assert.Empty(t, p.Source)
}

type fakeApp struct {
	startErr error
	stopped  bool
}

func (f *fakeApp) Start() error { return f.startErr }
func (f *fakeApp) Stop()        { f.stopped = true }

func TestRunApplication_StopsOnFailure(t *testing.T) {
	a := &fakeApp{startErr: errors.New("no tty")}
	assert.EqualError(t, runApplication(a), "no tty")
	assert.True(t, a.stopped)

	ok := &fakeApp{}
	assert.NoError(t, runApplication(ok))
	assert.True(t, ok.stopped)
}
