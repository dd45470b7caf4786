package template

import (
	"strings"
	"text/template"
)

var (
	xmlReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	resStringReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`\`, `\\`,
		"'", `\'`,
		`"`, `\"`,
	)
	quoteReplacer = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"$", `\$`,
	)
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// xml escapes a value for an XML attribute or text node.
	"xml": xmlReplacer.Replace,
	// resString escapes a value for an Android string resource.
	"resString": escapeResString,
	// quote escapes a value for a double-quoted Groovy or Kotlin string.
	"quote": quoteReplacer.Replace,
	// kotlinColor converts #RRGGBB or #AARRGGBB into a Compose Color literal.
	"kotlinColor": kotlinColor,
	"packagePath": func(pkg string) string { return strings.ReplaceAll(pkg, ".", "/") },
	"lower":       strings.ToLower,
	"join":        func(sep string, items []string) string { return strings.Join(items, sep) },
}

func escapeResString(s string) string {
	s = resStringReplacer.Replace(s)
	if strings.HasPrefix(s, "@") || strings.HasPrefix(s, "?") {
		s = `\` + s
	}
	return s
}

// kotlinColor returns 0xAARRGGBB for a hex color, assuming full opacity when
// the alpha channel is absent. Unparseable input is returned unchanged.
func kotlinColor(hex string) string {
	h := strings.ToUpper(strings.TrimPrefix(hex, "#"))
	switch len(h) {
	case 6:
		return "0xFF" + h
	case 8:
		return "0x" + h
	default:
		return hex
	}
}
