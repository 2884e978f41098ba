package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyPathUsesDefault(t *testing.T) {
	conf, err := New("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), conf); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, DefaultPrecision, conf.GetPrecision())
	require.NoError(t, conf.Validate())
}

func TestDefaultMixesOwnership(t *testing.T) {
	var owned, borrowed int
	for _, b := range Default().Bodies {
		if b.Owned {
			owned++
		} else {
			borrowed++
		}
	}
	assert.Equal(t, 2, owned)
	assert.Equal(t, 2, borrowed)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodies.yaml")
	data := `precision: 2
bodies:
  - kind: pyramid
    dimensions: [4, 6, 3]
  - kind: sphere
    dimensions: [2.5]
    owned: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	conf, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 2, conf.GetPrecision())
	want := []BodyConfig{
		{Kind: "pyramid", Dimensions: []float64{4, 6, 3}},
		{Kind: "sphere", Dimensions: []float64{2.5}, Owned: true},
	}
	if diff := cmp.Diff(want, conf.Bodies); diff != "" {
		t.Errorf("bodies mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFallbacks(t *testing.T) {
	conf, err := Parse([]byte("precision: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, conf.GetPrecision())
	assert.Equal(t, Default().Bodies, conf.Bodies)

	conf, err = Parse([]byte("bodies:\n  - kind: sphere\n    dimensions: [1]\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrecision, conf.GetPrecision())
	assert.Len(t, conf.Bodies, 1)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("precison: 3\n"))
	require.Error(t, err)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"negative precision", func(c *Config) { c.SetPrecision(-1) }, true},
		{"precision too large", func(c *Config) { c.SetPrecision(MaxPrecision + 1) }, true},
		{"max precision", func(c *Config) { c.SetPrecision(MaxPrecision) }, false},
		{"no bodies", func(c *Config) { c.Bodies = nil }, true},
		{"missing kind", func(c *Config) { c.Bodies[0].Kind = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Default()
			tt.mutate(conf)
			err := conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
