// Package validate holds the quote form rules shared by the website backend
// and the Go submission client.
//
// Validation is layered:
//
//   - predicates (Required, Email, Phone, MinLength, MaxLength) are pure
//     functions of a single value;
//   - a Rule pairs one predicate kind with its bound and user-facing message;
//   - a Table maps every form Field to its ordered rules and runs them with
//     first-failure semantics;
//   - a Validator keeps the live Result (field -> message) for one form.
//
// A Validator is not safe for concurrent use. It models a single form on a
// single event loop; servers create one per request.
package validate
