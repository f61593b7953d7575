package apitypes

import "strings"

// Signature renders the declaration line shown at the top of a hover card.
func (t Type) Signature() string {
	if t.Kind == KindVariable {
		return t.Type + " " + t.Name
	}
	return "class " + t.Name + typeParams(t.TypeParameters)
}

// Signature renders the member as a Dart declaration.
func (m Member) Signature() string {
	var b strings.Builder
	if m.Static {
		b.WriteString("static ")
	}
	ret := m.Type
	if m.ReturnType != "" {
		ret = m.ReturnType
	}
	b.WriteString(ret)
	b.WriteByte(' ')
	b.WriteString(m.Name)
	if m.IsMethod() {
		b.WriteString(typeParams(m.TypeParameters))
		b.WriteString(paramList(m.Parameters))
	}
	return b.String()
}

// Signature renders the constructor of owner.
func (c Constructor) Signature(owner string) string {
	var b strings.Builder
	if c.Factory {
		b.WriteString("factory ")
	}
	b.WriteString(owner)
	if c.Name != "" && c.Name != owner {
		b.WriteByte('.')
		b.WriteString(c.Name)
	}
	b.WriteString(paramList(c.Parameters))
	return b.String()
}

func typeParams(ps []string) string {
	if len(ps) == 0 {
		return ""
	}
	return "<" + strings.Join(ps, ", ") + ">"
}

// paramList renders required positional parameters, then optional
// positional ones in brackets and named ones in braces.
func paramList(params []Parameter) string {
	var required, optional, named []string
	for _, p := range params {
		switch {
		case p.Kind == Named:
			named = append(named, param(p, true))
		case p.Default != "":
			optional = append(optional, param(p, false))
		default:
			required = append(required, param(p, false))
		}
	}
	parts := required
	if len(optional) > 0 {
		parts = append(parts, "["+strings.Join(optional, ", ")+"]")
	}
	if len(named) > 0 {
		parts = append(parts, "{"+strings.Join(named, ", ")+"}")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func param(p Parameter, named bool) string {
	s := p.Type + " " + p.Name
	if named && p.Required {
		s = "required " + s
	}
	if p.Default != "" {
		s += " = " + p.Default
	}
	return s
}
