package adapter

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

// hclConfigFile is the top-level shape of an HCL config: a sequence of
// `fragment` blocks in list order.
type hclConfigFile struct {
	Fragments []*hclFragment `hcl:"fragment,block"`
}

type hclFragment struct {
	Name            *string             `hcl:"name,optional"`
	Preset          *string             `hcl:"preset,optional"`
	Files           []string            `hcl:"files,optional"`
	Ignores         []string            `hcl:"ignores,optional"`
	LanguageOptions *hclLanguageOptions `hcl:"language_options,block"`
	LinterOptions   *hclLinterOptions   `hcl:"linter_options,block"`
	Rules           hcl.Expression      `hcl:"rules,optional"`
	Settings        hcl.Expression      `hcl:"settings,optional"`
	Plugins         []string            `hcl:"plugins,optional"`
}

type hclLanguageOptions struct {
	EcmaVersion   hcl.Expression `hcl:"ecma_version,optional"`
	SourceType    *string        `hcl:"source_type,optional"`
	Parser        *string        `hcl:"parser,optional"`
	ParserOptions hcl.Expression `hcl:"parser_options,optional"`
	Globals       hcl.Expression `hcl:"globals,optional"`
	GlobalSets    []string       `hcl:"global_sets,optional"`
}

type hclLinterOptions struct {
	NoInlineConfig                *bool          `hcl:"no_inline_config,optional"`
	ReportUnusedDisableDirectives hcl.Expression `hcl:"report_unused_disable_directives,optional"`
}

func decodeHCL(filename string, data []byte) ([]m.FragmentDocument, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl: %s", diags.Error())
	}

	var config hclConfigFile

	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl: %s", diags.Error())
	}

	docs := make([]m.FragmentDocument, 0, len(config.Fragments))

	for i, block := range config.Fragments {
		doc, err := block.document()
		if err != nil {
			return nil, fmt.Errorf("fragment #%d: %w", i, err)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func (f *hclFragment) document() (m.FragmentDocument, error) {
	doc := m.FragmentDocument{
		Name:    deref(f.Name),
		Preset:  deref(f.Preset),
		Files:   f.Files,
		Ignores: f.Ignores,
		Plugins: f.Plugins,
	}

	var err error

	if doc.Rules, err = mapAttribute("rules", f.Rules); err != nil {
		return doc, err
	}

	if doc.Settings, err = mapAttribute("settings", f.Settings); err != nil {
		return doc, err
	}

	if lo := f.LanguageOptions; lo != nil {
		out := &m.LanguageOptionsDocument{
			SourceType: deref(lo.SourceType),
			Parser:     deref(lo.Parser),
			GlobalSets: lo.GlobalSets,
		}

		if out.EcmaVersion, err = valueAttribute("ecma_version", lo.EcmaVersion); err != nil {
			return doc, err
		}

		if out.ParserOptions, err = mapAttribute("parser_options", lo.ParserOptions); err != nil {
			return doc, err
		}

		if out.Globals, err = mapAttribute("globals", lo.Globals); err != nil {
			return doc, err
		}

		doc.LanguageOptions = out
	}

	if lo := f.LinterOptions; lo != nil {
		out := &m.LinterOptionsDocument{NoInlineConfig: lo.NoInlineConfig}

		if out.ReportUnusedDisableDirectives, err = valueAttribute("report_unused_disable_directives", lo.ReportUnusedDisableDirectives); err != nil {
			return doc, err
		}

		doc.LinterOptions = out
	}

	return doc, nil
}

// valueAttribute evaluates a literal expression. Absent attributes evaluate
// to null and come back as nil.
func valueAttribute(name string, expr hcl.Expression) (any, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s", name, diags.Error())
	}

	out, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return out, nil
}

func mapAttribute(name string, expr hcl.Expression) (map[string]any, error) {
	v, err := valueAttribute(name, expr)
	if err != nil || v == nil {
		return nil, err
	}

	out, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected an object, got %T", name, v)
	}

	return out, nil
}

// ctyToNative converts a cty value into the shapes the YAML decoder produces:
// strings, bools, int64 or float64 numbers, []any and map[string]any.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}

		f, _ := bf.Float64()

		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			_, val := it.Element()

			native, err := ctyToNative(val)
			if err != nil {
				return nil, err
			}

			slice = append(slice, native)
		}

		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)

		for it := v.ElementIterator(); it.Next(); {
			key, val := it.Element()
			keyStr := key.AsString()

			native, err := ctyToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", keyStr, err)
			}

			goMap[keyStr] = native
		}

		return goMap, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
