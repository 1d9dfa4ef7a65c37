// Package builder writes the i18nstr text encoding programmatically.
//
// The call order template → arguments → finish is enforced by the types:
// TemplateStage only offers Template, ArgStage offers the argument methods
// and Finish, and only Finish produces the Finished token an I18n
// implementation has to return. A Finished not obtained from Finish on the
// stage handed to BuildI18n (such as a zero Finished{}) makes Encode panic.
//
//	func (e NotFound) BuildI18n(b builder.TemplateStage) builder.Finished {
//	    return b.Template("file not found: {0}").ArgString(e.Path).Finish()
//	}
package builder

import (
	"fmt"
	"strings"

	"github.com/minios-linux/i18nstr/escape"
	"github.com/minios-linux/i18nstr/i18nstr"
)

// I18n is implemented by values that can describe themselves as a
// translatable string.
type I18n interface {
	BuildI18n(b TemplateStage) Finished
}

// Func adapts a function to I18n.
type Func func(b TemplateStage) Finished

// BuildI18n calls f(b).
func (f Func) BuildI18n(b TemplateStage) Finished { return f(b) }

// Finished is returned by ArgStage.Finish. It records which output the
// macro was closed on, so a Finished built any other way is detected.
type Finished struct {
	out *strings.Builder
}

// build runs v against stage and checks that the macro was closed.
func build(v I18n, stage TemplateStage) {
	if f := v.BuildI18n(stage); f.out == nil || f.out != stage.out {
		panic(fmt.Sprintf("builder: %T.BuildI18n returned without calling Finish", v))
	}
}

// TemplateStage is the first stage: it expects the template body.
type TemplateStage struct {
	out *strings.Builder
}

// New starts a template that appends its encoding to out.
func New(out *strings.Builder) TemplateStage {
	return TemplateStage{out: out}
}

// Template writes the opening of the macro with the given body.
func (s TemplateStage) Template(body string) ArgStage {
	s.out.WriteString("t!('")
	s.out.WriteString(escape.Escape(body))
	s.out.WriteByte('\'')
	return ArgStage(s)
}

// ArgStage accepts arguments in placeholder order.
type ArgStage struct {
	out *strings.Builder
}

// Arg appends a nested translatable value.
func (s ArgStage) Arg(v I18n) ArgStage {
	s.out.WriteByte(',')
	build(v, TemplateStage(s))
	return s
}

// ArgTree appends an already built tree.
func (s ArgStage) ArgTree(v i18nstr.String) ArgStage {
	s.out.WriteByte(',')
	v.WriteTo(s.out)
	return s
}

// ArgString appends a literal argument.
func (s ArgStage) ArgString(v string) ArgStage {
	s.out.WriteString(",'")
	s.out.WriteString(escape.Escape(v))
	s.out.WriteByte('\'')
	return s
}

// Argf appends a literal argument formatted with fmt.
func (s ArgStage) Argf(format string, a ...any) ArgStage {
	s.out.WriteString(",'")
	fmt.Fprintf(escape.NewWriter(s.out), format, a...)
	s.out.WriteByte('\'')
	return s
}

// ArgValue appends v formatted with %v as a literal argument.
func (s ArgStage) ArgValue(v any) ArgStage {
	return s.Argf("%v", v)
}

// ArgDebug appends v formatted with %#v as a literal argument.
func (s ArgStage) ArgDebug(v any) ArgStage {
	return s.Argf("%#v", v)
}

// ArgT appends an argument-less template, so the argument itself is
// translated.
func (s ArgStage) ArgT(body string) ArgStage {
	s.out.WriteString(",t!('")
	s.out.WriteString(escape.Escape(body))
	s.out.WriteString("')")
	return s
}

// ArgTf is ArgT with a body formatted by fmt.
func (s ArgStage) ArgTf(format string, a ...any) ArgStage {
	s.out.WriteString(",t!('")
	fmt.Fprintf(escape.NewWriter(s.out), format, a...)
	s.out.WriteString("')")
	return s
}

// Finish closes the macro.
func (s ArgStage) Finish() Finished {
	s.out.WriteByte(')')
	return Finished{out: s.out}
}

// Encode returns the text encoding of v.
func Encode(v I18n) string {
	var b strings.Builder
	b.Grow(64)
	build(v, New(&b))
	return b.String()
}

// Tree returns v as a parsed tree.
func Tree(v I18n) (i18nstr.String, error) {
	return i18nstr.Parse(Encode(v))
}

// Localize renders v through r. If the encoding cannot be transformed the
// raw encoding is returned.
func Localize(v I18n, r i18nstr.Resolver) string {
	s := Encode(v)
	_ = i18nstr.TranslateInPlace(&s, r)
	return s
}

// Plain renders v without translation.
func Plain(v I18n) string {
	return Localize(v, i18nstr.NoResolver)
}
