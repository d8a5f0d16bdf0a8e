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

// Package config holds the configuration of catalogqa tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/linkcheck"
	"github.com/cayleygraph/catalogqa/quality"
	"github.com/cayleygraph/catalogqa/voc"
)

const (
	// EnvPrefix prefixes every environment variable, as in CATALOGQA_LINKS_WORKERS.
	EnvPrefix = "CATALOGQA"
	// EnvConfig names a configuration file when --config is not given.
	EnvConfig = EnvPrefix + "_CONFIG"
)

const (
	KeyPrefixes     = "vocabulary.prefixes"
	KeyPropertySets = "property_sets"

	KeyDuplicates = "duplicates.predicates"

	KeySimilarityTitle       = "similarity.title"
	KeySimilarityDescription = "similarity.description"
	KeySimilarityLanguage    = "similarity.language"

	KeyReadabilityTitle       = "readability.title"
	KeyReadabilityDescription = "readability.description"

	KeyTimelinessPredicate = "timeliness.predicate"
	KeyTimelinessWindow    = "timeliness.window"

	KeyLicensingPredicate = "licensing.predicate"

	KeyLinksTimeout   = "links.timeout"
	KeyLinksWorkers   = "links.workers"
	KeyLinksRetries   = "links.retries"
	KeyLinksCacheSize = "links.cache_size"
	KeyLinksUserAgent = "links.user_agent"

	KeyScalabilityTrials    = "scalability.trials"
	KeyScalabilityWarmup    = "scalability.warmup"
	KeyScalabilityFactor    = "scalability.factor"
	KeyScalabilitySubject   = "scalability.subject"
	KeyScalabilityPredicate = "scalability.predicate"
	KeyScalabilityOldValue  = "scalability.old_value"
	KeyScalabilityNewValue  = "scalability.new_value"

	KeyAccuracyNormalize   = "accuracy.normalize"
	KeyAccuracyPropertySet = "accuracy.property_set"

	KeyLoadFormat = "load.format"
)

// DefaultRetries is the default number of link check retries.
const DefaultRetries = 2

// Config mirrors the configuration file.
type Config struct {
	Vocabulary struct {
		Prefixes map[string]string `mapstructure:"prefixes" yaml:"prefixes"`
	} `mapstructure:"vocabulary" yaml:"vocabulary"`

	// PropertySets are merged over the built-in sets by name.
	PropertySets map[string][]string `mapstructure:"property_sets" yaml:"property_sets"`

	Duplicates struct {
		Predicates []string `mapstructure:"predicates" yaml:"predicates"`
	} `mapstructure:"duplicates" yaml:"duplicates"`

	Similarity struct {
		Title       string `mapstructure:"title" yaml:"title"`
		Description string `mapstructure:"description" yaml:"description"`
		Language    string `mapstructure:"language" yaml:"language"`
	} `mapstructure:"similarity" yaml:"similarity"`

	Readability struct {
		Title       string `mapstructure:"title" yaml:"title"`
		Description string `mapstructure:"description" yaml:"description"`
	} `mapstructure:"readability" yaml:"readability"`

	Timeliness struct {
		Predicate string        `mapstructure:"predicate" yaml:"predicate"`
		Window    time.Duration `mapstructure:"window" yaml:"window"`
	} `mapstructure:"timeliness" yaml:"timeliness"`

	Licensing struct {
		Predicate string `mapstructure:"predicate" yaml:"predicate"`
	} `mapstructure:"licensing" yaml:"licensing"`

	Links struct {
		Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
		Workers   int           `mapstructure:"workers" yaml:"workers"`
		Retries   int           `mapstructure:"retries" yaml:"retries"`
		CacheSize int           `mapstructure:"cache_size" yaml:"cache_size"`
		UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
	} `mapstructure:"links" yaml:"links"`

	Scalability struct {
		Trials    int     `mapstructure:"trials" yaml:"trials"`
		Warmup    int     `mapstructure:"warmup" yaml:"warmup"`
		Factor    float64 `mapstructure:"factor" yaml:"factor"`
		Subject   string  `mapstructure:"subject" yaml:"subject"`
		Predicate string  `mapstructure:"predicate" yaml:"predicate"`
		OldValue  string  `mapstructure:"old_value" yaml:"old_value"`
		NewValue  string  `mapstructure:"new_value" yaml:"new_value"`
	} `mapstructure:"scalability" yaml:"scalability"`

	Accuracy struct {
		Normalize   bool   `mapstructure:"normalize" yaml:"normalize"`
		PropertySet string `mapstructure:"property_set" yaml:"property_set"`
	} `mapstructure:"accuracy" yaml:"accuracy"`

	Load struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"load" yaml:"load"`
}

// SetDefaults registers the default value of every scalar key, which also
// makes them visible to environment lookups.
func SetDefaults(v *viper.Viper) {
	o := quality.DefaultOptions()
	v.SetDefault(KeyDuplicates, o.DuplicatePredicates)
	v.SetDefault(KeySimilarityTitle, o.SimilarityTitle)
	v.SetDefault(KeySimilarityDescription, o.SimilarityDescription)
	v.SetDefault(KeySimilarityLanguage, o.Language)
	v.SetDefault(KeyReadabilityTitle, o.ReadabilityTitle)
	v.SetDefault(KeyReadabilityDescription, o.ReadabilityDescription)
	v.SetDefault(KeyTimelinessPredicate, o.ModifiedPredicate)
	v.SetDefault(KeyTimelinessWindow, o.Window)
	v.SetDefault(KeyLicensingPredicate, o.LicensePredicate)
	v.SetDefault(KeyLinksTimeout, linkcheck.DefaultTimeout)
	v.SetDefault(KeyLinksWorkers, o.Links.Workers)
	v.SetDefault(KeyLinksRetries, DefaultRetries)
	v.SetDefault(KeyLinksCacheSize, 0)
	v.SetDefault(KeyLinksUserAgent, linkcheck.DefaultUserAgent)
	v.SetDefault(KeyScalabilityTrials, o.Scalability.Trials)
	v.SetDefault(KeyScalabilityWarmup, o.Scalability.Warmup)
	v.SetDefault(KeyScalabilityFactor, o.Scalability.Factor)
	v.SetDefault(KeyScalabilitySubject, o.Scalability.Subject)
	v.SetDefault(KeyScalabilityPredicate, o.Scalability.Predicate)
	v.SetDefault(KeyScalabilityOldValue, o.Scalability.OldValue)
	v.SetDefault(KeyScalabilityNewValue, o.Scalability.NewValue)
	v.SetDefault(KeyAccuracyNormalize, o.NormalizeAccuracy)
	v.SetDefault(KeyAccuracyPropertySet, o.AccuracyPropertySet)
	v.SetDefault(KeyLoadFormat, "")
}

// LoadDotEnv loads environment variables from a .env file. A missing file
// is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("could not load %q: %w", path, err)
	}
	clog.Infof("loaded environment from %s", path)
	return nil
}

// searchPaths are tried in order when no configuration file is named.
var searchPaths = []string{"catalogqa.yaml", "/etc/catalogqa.yaml"}

// Setup binds environment variables to v and reads the configuration file.
// The file is the given one, else $CATALOGQA_CONFIG, else the first existing
// one of ./catalogqa.yaml and /etc/catalogqa.yaml. Having no file at all is
// not an error; a named file that is missing is.
func Setup(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		file = os.Getenv(EnvConfig)
	}
	if file == "" {
		for _, p := range searchPaths {
			if _, err := os.Stat(p); err == nil {
				file = p
				break
			}
		}
	}
	if file == "" {
		clog.Infof("no configuration file found, using defaults")
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file %q: %w", file, err)
	}
	clog.Infof("using config file %s", v.ConfigFileUsed())
	return nil
}

// New decodes the configuration held by v.
func New(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("could not decode configuration: %w", err)
	}
	return &c, nil
}

// Namespaces returns the default namespaces with the configured prefixes
// registered over them.
func (c *Config) Namespaces() *voc.Namespaces {
	ns := voc.New(voc.Defaults()...)
	for pref, full := range c.Vocabulary.Prefixes {
		ns.Register(pref, full)
	}
	return ns
}

// Resolver creates the HTTP resolver of the link validator.
func (c *Config) Resolver() *linkcheck.HTTPResolver {
	return linkcheck.NewHTTPResolver(linkcheck.Options{
		Timeout:   c.Links.Timeout,
		Retries:   c.Links.Retries,
		UserAgent: c.Links.UserAgent,
	})
}

// Options converts the configuration to engine options.
func (c *Config) Options() quality.Options {
	sets := quality.DefaultPropertySets()
	for name, preds := range c.PropertySets {
		sets[name] = preds
	}
	return quality.Options{
		Namespaces:             c.Namespaces(),
		PropertySets:           sets,
		DuplicatePredicates:    c.Duplicates.Predicates,
		SimilarityTitle:        c.Similarity.Title,
		SimilarityDescription:  c.Similarity.Description,
		Language:               c.Similarity.Language,
		ReadabilityTitle:       c.Readability.Title,
		ReadabilityDescription: c.Readability.Description,
		ModifiedPredicate:      c.Timeliness.Predicate,
		Window:                 c.Timeliness.Window,
		LicensePredicate:       c.Licensing.Predicate,
		Resolver:               c.Resolver(),
		Links: quality.LinkOptions{
			Workers:   c.Links.Workers,
			CacheSize: c.Links.CacheSize,
		},
		Scalability: quality.ScalabilityOptions{
			Trials:    c.Scalability.Trials,
			Warmup:    c.Scalability.Warmup,
			Factor:    c.Scalability.Factor,
			Subject:   c.Scalability.Subject,
			Predicate: c.Scalability.Predicate,
			OldValue:  c.Scalability.OldValue,
			NewValue:  c.Scalability.NewValue,
		},
		NormalizeAccuracy:   c.Accuracy.Normalize,
		AccuracyPropertySet: c.Accuracy.PropertySet,
	}
}

// Engine creates an evaluation engine from the configuration.
func (c *Config) Engine() (*quality.Engine, error) {
	return quality.New(c.Options())
}
