package tmplfunc

import (
	"bytes"
	htmltemplate "html/template"
	"testing"
	"text/template"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, text string, data interface{}) string {
	tmpl, err := Install(template.New("test")).Parse(text)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, tmpl.Execute(&out, data))
	return out.String()
}

func TestBasicUsage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	assert.Equal(t, "", render(t, `{{ classes }}`, nil))
	assert.Equal(t, "a b c", render(t, `{{ classes "a" "b c" }}`, nil))
	assert.Equal(t, "a b c", render(t, `{{ classes .cls }}`, map[string]interface{}{
		"cls": []interface{}{"a", []interface{}{"b", []string{"c"}}},
	}))
	assert.Equal(t, "a b", render(t, `{{ classes "a" nil .b }}`, map[string]interface{}{
		"b": "b",
	}))
}

func TestListConstructionInsideTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	assert.Equal(t, "a b c", render(t, `{{ ((classes "a").With "b").With "c" }}`, nil))
	assert.Equal(t, "x z a", render(t, `{{ ((classes "x y z").With "a").Without "y" }}`, nil))
	assert.Equal(t, "yes", render(t, `{{ if (classes "x y z").Has "y" }}yes{{ else }}no{{ end }}`, nil))
	assert.Equal(t, "3", render(t, `{{ (classes "x y z x").Count }}`, nil))
}

func TestHTMLTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "classes")
	defer teardown()
	//
	tmpl, err := InstallHTML(htmltemplate.New("test")).Parse(
		`<div class="{{ (classes "card" .extra).Without "hidden" }}"></div>`)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, tmpl.Execute(&out, map[string]interface{}{
		"extra": []string{"card-active", "hidden"},
	}))
	assert.Equal(t, `<div class="card card-active"></div>`, out.String())
}

func TestFuncsAssignable(t *testing.T) {
	var fm template.FuncMap = Funcs()
	var hfm htmltemplate.FuncMap = Funcs()
	assert.Contains(t, fm, FuncName)
	assert.Contains(t, hfm, FuncName)
}
