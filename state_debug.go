package lazyconf

// attachErrorInfo names the builtin an error surfaced in and, in debug
// mode, records every builtin it passed through. The error is copied
// first because a failing thunk hands the same error to every caller.
func (s *State) attachErrorInfo(err error, name string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	if e.Name != "" && !s.env.config.Debug {
		return err
	}
	c := e.Clone()
	if c.Name == "" {
		c.Name = name
	}
	if s.env.config.Debug {
		c.Frames = append(c.Frames, name)
	}
	return c
}
