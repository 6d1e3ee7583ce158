package store

import "github.com/xgx-io/anyerr/converter"

// Unit stores nothing. It is a zero-size placeholder for applications that
// want no context on their errors.
type Unit struct{}

func (u Unit) InsertAny(converter.Converter, any, any) Unit { return u }
func (Unit) Lookup(any) (Entry, bool)                        { return nil, false }
func (Unit) Iter() *Iter                                     { return EmptyIter() }
func (Unit) Len() int                                        { return 0 }
func (Unit) Converter() converter.Converter                  { return converter.Into{} }

var _ Context[Unit] = Unit{}
