package logging

// Discard drops everything logged to it. Components fall back to it when no
// logger is given.
var Discard Interface = discard{}

type discard struct{}

func (discard) Debug(string, ...any)       {}
func (discard) Info(string, ...any)        {}
func (discard) Warn(string, ...any)        {}
func (discard) Error(string, ...any)       {}
func (discard) AddArgsUpdater(ArgsUpdater) {}
