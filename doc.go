// doc.go — package documentation for anyerr
//
// Package anyerr provides one composable error type for a whole application:
// a failure can originate here (Leaf), be framed by another layer on its way
// up (Layered), or come from somewhere else entirely (Opaque). Every layer
// carries a kind, a message and structured context; the chain ends up in a
// report.Report for humans or in slog for machines.
//
// # Choosing C and K
//
// Error is generic over a context store C and a kind enumeration K. Fix both
// once per application:
//
//	type AppError = anyerr.Error[store.StringMap, kind.Standard]
//	var Errs anyerr.Factory[store.StringMap, kind.Standard]
//
//	+-----------------------+---------------------------------------------+
//	| Store                 | Holds                                       |
//	+-----------------------+---------------------------------------------+
//	| store.StringMap       | many entries, values as debug strings       |
//	| store.AnyMap          | many entries, values boxed, typed retrieval |
//	| store.StringSingleton | one string; inserting again replaces it     |
//	| store.Unit            | nothing                                     |
//	+-----------------------+---------------------------------------------+
//
// Any type satisfying kind.Kind works as K; kind.Standard and kind.None ship
// as references.
//
// # Building Chains
//
//	err := Errs.Builder().
//		Kind(kind.ValueValidation).
//		Message("age out of range").
//		Context("age", age).
//		Build()
//
//	return err.Overlay(anyerr.WithKind("could not register", kind.RuleViolation)).
//		Context("user", name).
//		Build()
//
// Foreign errors enter through Wrap (or Attempt for (value, error) pairs).
// Wrap never nests an *Error inside another opaquely: it returns it as is.
//
// # Backtraces
//
// Leaf and Opaque values capture a backtrace when created; Layered values
// share their source's, so Backtrace() is the same pointer on every layer of
// a chain.
//
//	+-------------------------------+-------------------+
//	| Constructor / Operation       | Captures stack?   |
//	+-------------------------------+-------------------+
//	| Minimal / Quick               | YES               |
//	| Builder.Build without source  | YES               |
//	| Wrap / Attempt (foreign err)  | YES               |
//	| Overlay(...).Build()          | NO (shares)       |
//	| Builder.Build with source     | NO (shares)       |
//	+-------------------------------+-------------------+
//
// # Context Traversal
//
// Context(Shallowest) yields one layer's entries in insertion order.
// Context(All) yields the outermost layer's entries first, then each source's
// in turn. Iterators are lazy and compose without copying.
//
// # Downcasting
//
// Is, Downcast, DowncastRef and DowncastMut answer "is this error an E?".
// Leaf and Layered values are only ever *Error[C, K]; Opaque values answer
// for the foreign error they hold, by exact type.
//
// # Formatting
//
//   - `%v`, `%s`   → this layer's message
//   - `%+v`        → verbose, multi-line (kind, msg, ctx, cause, stack)
//   - `%q`         → quoted message
//
// # Interop
//
//   - errors.Is/As traverse Layered → source → ... → Opaque → foreign error.
//   - Find, KindOf, HasKind and TypedField.Get also look behind
//     fmt.Errorf("%w") and errors.Join.
//   - *Error implements slog.LogValuer.
package anyerr
