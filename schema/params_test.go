package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		p := NewParams(
			Param{Name: "b", Value: "2"},
			Param{Name: "a", Value: "1"},
			Param{Name: "c", Value: "3"},
		)
		var names []string
		for _, kv := range p.List() {
			names = append(names, kv.Name)
		}
		assert.Equal(t, []string{"b", "a", "c"}, names)
	})
	t.Run("OverwriteKeepsSlot", func(t *testing.T) {
		var p Params
		p.Set("create_column", "created_at")
		p.Set("update_column", "updated_at")
		p.Set("create_column", "created_on")
		list := p.List()
		assert.Equal(t, "create_column", list[0].Name)
		assert.Equal(t, "created_on", list[0].Value)
		assert.Equal(t, 2, p.Len())
	})
	t.Run("SetDefault", func(t *testing.T) {
		var p Params
		assert.True(t, p.SetDefault("locale_column", "locale"))
		assert.False(t, p.SetDefault("locale_column", "lang"))
		v, ok := p.Get("locale_column")
		assert.True(t, ok)
		assert.Equal(t, "locale", v)
	})
	t.Run("CloneIsIndependent", func(t *testing.T) {
		var p Params
		p.Set("k", "v")
		c := p.Clone()
		c.Set("k", "other")
		v, _ := p.Get("k")
		assert.Equal(t, "v", v)
		v, _ = c.Get("k")
		assert.Equal(t, "other", v)
	})
	t.Run("Merge", func(t *testing.T) {
		var p, q Params
		p.Set("a", "1")
		q.Set("a", "2")
		q.Set("b", "3")
		p.Merge(&q)
		v, _ := p.Get("a")
		assert.Equal(t, "2", v)
		v, _ = p.Get("b")
		assert.Equal(t, "3", v)
	})
	t.Run("NilSafe", func(t *testing.T) {
		var p *Params
		v, ok := p.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, "", v)
		assert.Equal(t, 0, p.Len())
		assert.Nil(t, p.List())
	})
}
