package main

import (
	"os"
	"strconv"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/engine/mathlib"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"gopkg.in/yaml.v3"
)

// fileConfig is the layout of a configuration file:
//
//	accent:
//	  classifier: curated
//	  size: 120%
//	  dotless: false
type fileConfig struct {
	Accent struct {
		Classifier string `yaml:"classifier"`
		Size       string `yaml:"size"`
		Dotless    *bool  `yaml:"dotless"`
	} `yaml:"accent"`
}

// loadConfig reads the library configuration from a YAML file. An empty
// path yields an empty configuration.
func loadConfig(path string) (testconfig.Conf, error) {
	conf := testconfig.Conf{}
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read configuration %s", path)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse configuration %s", path)
	}
	if fc.Accent.Classifier != "" {
		conf[mathlib.KeyClassifier] = fc.Accent.Classifier
	}
	if fc.Accent.Size != "" {
		conf[mathlib.KeySize] = fc.Accent.Size
	}
	if fc.Accent.Dotless != nil {
		conf[mathlib.KeyDotless] = strconv.FormatBool(*fc.Accent.Dotless)
	}
	tracer().Infof("configuration read from %s", path)
	return conf, nil
}
