package schema

// Param is a single named behavior parameter.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered name→value parameter mapping. Order is insertion
// order and is preserved when the schema is exported, so declarations
// round-trip byte-for-byte. The zero value is ready to use.
type Params struct {
	list []Param
	idx  map[string]int
}

// NewParams returns params populated in the given order. Later duplicates
// overwrite earlier values but keep the original position.
func NewParams(ps ...Param) *Params {
	out := &Params{}
	for _, p := range ps {
		out.Set(p.Name, p.Value)
	}
	return out
}

// Set adds or overwrites a parameter. Overwriting keeps the original slot.
func (p *Params) Set(name, value string) {
	if p.idx == nil {
		p.idx = make(map[string]int)
	}
	if i, ok := p.idx[name]; ok {
		p.list[i].Value = value
		return
	}
	p.idx[name] = len(p.list)
	p.list = append(p.list, Param{Name: name, Value: value})
}

// SetDefault sets the parameter only if it is not already present.
// It reports whether the value was set.
func (p *Params) SetDefault(name, value string) bool {
	if p.Has(name) {
		return false
	}
	p.Set(name, value)
	return true
}

// Get returns the parameter value and whether it is present.
func (p *Params) Get(name string) (string, bool) {
	if p == nil || p.idx == nil {
		return "", false
	}
	i, ok := p.idx[name]
	if !ok {
		return "", false
	}
	return p.list[i].Value, true
}

// Has reports whether the parameter is present.
func (p *Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.list)
}

// List returns a copy of the parameters in insertion order.
func (p *Params) List() []Param {
	if p == nil {
		return nil
	}
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	if p == nil {
		return &Params{}
	}
	return NewParams(p.list...)
}

// Merge copies every parameter of other into p, overwriting existing values.
func (p *Params) Merge(other *Params) {
	if other == nil {
		return
	}
	for _, kv := range other.list {
		p.Set(kv.Name, kv.Value)
	}
}
