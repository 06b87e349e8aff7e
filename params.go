package gmat

// MaterialParam is one named shader parameter. Value holds a float32, an
// int32, an mgl32 vector or matrix, a []float32 array, or a *Texture.
// The binding handle is resolved lazily on first submit and cached.
type MaterialParam struct {
	Value any

	binding UniformBinding
}

// ParamEntry is one element of a batch parameter update.
type ParamEntry struct {
	Name  string
	Value any
}

// UniformBinding is a resolved destination for one parameter value,
// supplied by the graphics-device abstraction.
type UniformBinding interface {
	SetValue(value any)
}

// UniformResolver maps parameter names to bindings. Resolve returns nil
// for names the device does not know; resolution is retried on the next
// submit. Resolving the same name twice must yield an equivalent binding.
type UniformResolver interface {
	Resolve(name string) UniformBinding
}

// SetParameter upserts a named parameter. An existing entry keeps its
// resolved binding and only has its value replaced.
func (m *Material) SetParameter(name string, value any) {
	if p, ok := m.params[name]; ok {
		p.Value = value
		return
	}
	if m.params == nil {
		m.params = make(map[string]*MaterialParam)
	}
	m.params[name] = &MaterialParam{Value: value}
}

// SetParameters applies a batch of parameter updates in order.
func (m *Material) SetParameters(entries []ParamEntry) {
	for _, e := range entries {
		m.SetParameter(e.Name, e.Value)
	}
}

// Parameter returns the entry for name. The second result is false when no
// such parameter is set; missing parameters are not an error.
func (m *Material) Parameter(name string) (*MaterialParam, bool) {
	p, ok := m.params[name]
	return p, ok
}

// DeleteParameter removes the entry for name, if present.
func (m *Material) DeleteParameter(name string) {
	delete(m.params, name)
}

// ClearParameters removes all parameters.
func (m *Material) ClearParameters() {
	clear(m.params)
}

// SubmitParameters pushes parameter values to the device. With no names
// given every parameter is submitted, otherwise only the named subset.
// Bindings are resolved through res once per entry and cached; names the
// resolver does not know are skipped and retried on the next submit. This
// is the single point where the parameter table talks to the device.
func (m *Material) SubmitParameters(res UniformResolver, names ...string) {
	if len(names) == 0 {
		for name, p := range m.params {
			m.submitParam(res, name, p)
		}
		return
	}
	for _, name := range names {
		if p, ok := m.params[name]; ok {
			m.submitParam(res, name, p)
		}
	}
}

func (m *Material) submitParam(res UniformResolver, name string, p *MaterialParam) {
	if p.binding == nil {
		p.binding = res.Resolve(name)
		if p.binding == nil {
			return
		}
	}
	p.binding.SetValue(p.Value)
}
