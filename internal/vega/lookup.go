package vega

// Scale returns the scale named name, or nil.
func (s *Spec) Scale(name string) *Scale {
	for i := range s.Scales {
		if s.Scales[i].Name == name {
			return &s.Scales[i]
		}
	}

	return nil
}

// DataSource returns the data source named name, or nil.
func (s *Spec) DataSource(name string) *Data {
	for i := range s.Data {
		if s.Data[i].Name == name {
			return &s.Data[i]
		}
	}

	return nil
}

// Signal returns the signal named name, or nil.
func (s *Spec) Signal(name string) *Signal {
	return findSignal(s.Signals, name)
}

// Mark returns the first mark named name at any depth, or nil.
func (s *Spec) Mark(name string) *Mark {
	return findMark(s.Marks, name)
}

func findSignal(signals []Signal, name string) *Signal {
	for i := range signals {
		if signals[i].Name == name {
			return &signals[i]
		}
	}

	return nil
}

func findMark(marks []Mark, name string) *Mark {
	for i := range marks {
		if marks[i].Name == name {
			return &marks[i]
		}

		if m := findMark(marks[i].Marks, name); m != nil {
			return m
		}
	}

	return nil
}

// Signal returns the group-local signal named name, or nil.
func (m *Mark) Signal(name string) *Signal {
	return findSignal(m.Signals, name)
}

// Mark returns the first nested mark named name, or nil.
func (m *Mark) Mark(name string) *Mark {
	return findMark(m.Marks, name)
}

// IsGroup reports whether the mark nests other marks.
func (m *Mark) IsGroup() bool {
	return m.Type == MarkGroup
}

// UpdateEntry returns the update encoding of m, creating it when absent.
func (m *Mark) UpdateEntry() EncodeEntry {
	if m.Encode == nil {
		m.Encode = &Encode{}
	}

	if m.Encode.Update == nil {
		m.Encode.Update = EncodeEntry{}
	}

	return m.Encode.Update
}

// WalkLeaves calls fn for every non-group mark in marks, depth first.
func WalkLeaves(marks []Mark, fn func(m *Mark)) {
	for i := range marks {
		if marks[i].IsGroup() {
			WalkLeaves(marks[i].Marks, fn)

			continue
		}

		fn(&marks[i])
	}
}

// MarkNames lists the names of marks at any depth, in document order.
func MarkNames(marks []Mark) []string {
	var names []string

	for i := range marks {
		if marks[i].Name != "" {
			names = append(names, marks[i].Name)
		}

		names = append(names, MarkNames(marks[i].Marks)...)
	}

	return names
}
