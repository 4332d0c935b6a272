package templclass

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/npillmayer/classes"
	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	cls := Class("btn", []string{"btn-primary", "btn"}, nil)
	assert.Equal(t, "btn btn-primary", cls.ClassName())
	assert.IsType(t, &classes.Classes{}, cls)
}

func TestMutableClassesAreCSSClasses(t *testing.T) {
	var cls templ.CSSClass = classes.FromMutable("a").With("b")
	assert.Equal(t, "a b", cls.ClassName())
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, templ.Attributes{"class": "card card-active"},
		Attributes("card", classes.From("card-active card")))
	assert.Empty(t, Attributes(nil, 42))
}
