package gates

// Default returns a new set holding the standard gates.
func Default() *Set {
	s := NewSet("standard gates")

	for _, name := range []string{"i", "h", "x", "y", "z", "s", "si", "t", "ti", "v", "vi"} {
		s.Register(fixed(name, 1))
	}

	for _, name := range []string{"cnot", "cy", "cz", "cv", "ecr", "swap", "iswap"} {
		s.Register(fixed(name, 2))
	}

	s.Register(fixed("ccnot", 3))
	s.Register(fixed("cswap", 3))

	for _, name := range []string{"rx", "ry", "rz", "phaseshift", "gpi", "gpi2"} {
		s.Register(parametric(name, 1, 1))
	}
	s.Register(parametric("prx", 1, 2))
	s.Register(parametric("U", 1, 3))

	for _, name := range []string{
		"cphaseshift", "cphaseshift00", "cphaseshift01", "cphaseshift10",
		"pswap", "xy", "xx", "yy", "zz",
	} {
		s.Register(parametric(name, 2, 1))
	}
	s.Register(parametric("ms", 2, 3))

	s.Register(parametric("gphase", 0, 1))

	s.RegisterAlias("CX", "cnot")
	s.RegisterAlias("cx", "cnot")
	s.RegisterAlias("ccx", "ccnot")

	return s
}
