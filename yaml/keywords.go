// Package yaml loads engine keyword lists from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/kashi"
	"gopkg.in/yaml.v3"
)

// LoadKeywords reads keyword lists from the YAML file at path.
// Sections missing from the file keep their default values.
func LoadKeywords(path string) (kashi.Keywords, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return kashi.Keywords{}, kashi.Errorf(kashi.ENOTFOUND, "keyword file %s not found", path)
	} else if err != nil {
		return kashi.Keywords{}, err
	}
	return ParseKeywords(data)
}

// ParseKeywords decodes keyword lists of the form
//
//	header: [lyrics, 歌詞]
//	boilerplate: [artist:, comments]
//	indicator: [lyrics]
//
// Missing sections keep their defaults; an explicitly empty list disables
// that kind of matching. Unknown fields are rejected.
func ParseKeywords(data []byte) (kashi.Keywords, error) {
	kw := kashi.DefaultKeywords()

	var file struct {
		Header      *[]string `yaml:"header"`
		Boilerplate *[]string `yaml:"boilerplate"`
		Indicator   *[]string `yaml:"indicator"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return kashi.Keywords{}, kashi.Errorf(kashi.EINVALID, "invalid keyword file: %v", err)
	}

	if file.Header != nil {
		kw.Header = *file.Header
	}
	if file.Boilerplate != nil {
		kw.Boilerplate = *file.Boilerplate
	}
	if file.Indicator != nil {
		kw.Indicator = *file.Indicator
	}

	if err := kw.Validate(); err != nil {
		return kashi.Keywords{}, err
	}
	return kw, nil
}
