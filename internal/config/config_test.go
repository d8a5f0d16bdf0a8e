// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/catalogqa/quality"
	"github.com/cayleygraph/catalogqa/voc"
)

const testConfig = `
vocabulary:
  prefixes:
    ex: http://example.org/
property_sets:
  minimal:
    - dcat:title
  core:
    - dcat:title
    - dct:license
timeliness:
  window: 720h
links:
  workers: 2
  timeout: 3s
accuracy:
  normalize: true
  property_set: minimal
`

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "catalogqa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c, err := New(v)
	require.NoError(t, err)

	def := quality.DefaultOptions()
	o := c.Options()
	assert.Equal(t, def.DuplicatePredicates, o.DuplicatePredicates)
	assert.Equal(t, def.Window, o.Window)
	assert.Equal(t, def.Scalability, o.Scalability)
	assert.Equal(t, def.PropertySets, o.PropertySets)
	assert.Equal(t, DefaultRetries, c.Links.Retries)

	e, err := c.Engine()
	require.NoError(t, err)
	assert.Equal(t, []string{quality.SetCore, quality.SetDCAT, quality.SetDCT}, e.PropertySetNames())
}

func TestSetupFile(t *testing.T) {
	v := viper.New()
	require.NoError(t, Setup(v, writeConfig(t, testConfig)))
	c, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, 720*time.Hour, c.Timeliness.Window)
	assert.Equal(t, 3*time.Second, c.Links.Timeout)
	assert.Equal(t, 2, c.Links.Workers)
	// untouched keys keep their defaults
	assert.Equal(t, "dct:modified", c.Timeliness.Predicate)

	ns := c.Namespaces()
	full, ok := ns.Lookup("ex")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/", full)
	full, _ = ns.Lookup("dcat")
	assert.Equal(t, voc.DCAT, full)

	o := c.Options()
	assert.True(t, o.NormalizeAccuracy)
	assert.Equal(t, []string{"dcat:title", "dct:license"}, o.PropertySets[quality.SetCore])
	assert.Contains(t, o.PropertySets, quality.SetDCAT)

	e, err := c.Engine()
	require.NoError(t, err)
	set, err := e.PropertySet("minimal")
	require.NoError(t, err)
	require.Len(t, set.Predicates, 1)
}

func TestSetupEnv(t *testing.T) {
	t.Setenv("CATALOGQA_LINKS_WORKERS", "5")
	t.Setenv("CATALOGQA_SIMILARITY_LANGUAGE", "English")
	v := viper.New()
	require.NoError(t, Setup(v, writeConfig(t, testConfig)))
	c, err := New(v)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Links.Workers)
	assert.Equal(t, "English", c.Similarity.Language)

	t.Setenv(EnvConfig, writeConfig(t, "links:\n  retries: 7\n"))
	v = viper.New()
	require.NoError(t, Setup(v, ""))
	c, err = New(v)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Links.Retries)
}

func TestSetupMissingFile(t *testing.T) {
	err := Setup(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOGQA_TEST_DOTENV=loaded\n"), 0644))
	t.Setenv("CATALOGQA_TEST_DOTENV", "")
	os.Unsetenv("CATALOGQA_TEST_DOTENV")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("CATALOGQA_TEST_DOTENV"))
}
