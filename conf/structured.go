package conf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/byte4ever/cgen/templating"
)

// document is the structured form shared by the YAML and
// JSON formats.
type document struct {
	TemplateFile  string         `yaml:"template-file" json:"template-file"`
	HeaderFile    string         `yaml:"header-file"   json:"header-file"`
	SourceFile    string         `yaml:"source-file"   json:"source-file"`
	Substitutions []substitution `yaml:"substitutions" json:"substitutions"`
}

// substitution is one ordered key/value entry.
type substitution struct {
	Key   string `yaml:"key"   json:"key"`
	Value string `yaml:"value" json:"value"`
}

// ParseYAML reads a YAML document. Unknown fields are
// rejected.
func ParseYAML(rd io.Reader) (templating.Request, error) {
	const errCtx = "parsing yaml config"

	var doc document

	err := yaml.NewDecoder(
		rd, yaml.DisallowUnknownField(),
	).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return templating.Request{}, fmt.Errorf(
			"%s: %w: %w",
			errCtx, templating.ErrConfigMalformed, err,
		)
	}

	req, err := doc.request()
	if err != nil {
		return templating.Request{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return req, nil
}

// ParseJSON reads a JSON document. Unknown fields are
// rejected.
func ParseJSON(rd io.Reader) (templating.Request, error) {
	const errCtx = "parsing json config"

	var doc document

	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return templating.Request{}, fmt.Errorf(
			"%s: %w: %w",
			errCtx, templating.ErrConfigMalformed, err,
		)
	}

	req, err := doc.request()
	if err != nil {
		return templating.Request{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return req, nil
}

// request converts doc, trimming every key and value the
// way the plain format does.
func (doc document) request() (templating.Request, error) {
	var req templating.Request

	set(&req, KeyTemplateFile, strings.Trim(doc.TemplateFile, whitespace))
	set(&req, KeyHeaderFile, strings.Trim(doc.HeaderFile, whitespace))
	set(&req, KeySourceFile, strings.Trim(doc.SourceFile, whitespace))

	for _, sub := range doc.Substitutions {
		req.KeyValues = append(req.KeyValues, templating.KeyValue{
			Key:   strings.Trim(sub.Key, whitespace),
			Value: strings.Trim(sub.Value, whitespace),
		})
	}

	if err := validate(req); err != nil {
		return templating.Request{}, err
	}

	return req, nil
}
