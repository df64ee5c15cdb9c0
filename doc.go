// Package respond translates outcome values into HTTP response
// descriptors. Handlers return a Result, Option or Either from package
// outcome, and a single policy decides the status code and body:
//
//	res := outcome.From(store.Get(id))  // outcome.Result[*User]
//	resp := respond.Result(res)         // 200 {user} or 500 {error}
//
// The default policy:
//
//	success / some / right  → 200 with the payload, 204 for outcome.Void
//	failure                 → 500 with the error, or the []error of an aggregate
//	none                    → 404
//	left                    → 500 with the left payload as is
//
// Every case can be overridden per call. An override replaces the default
// for its case entirely:
//
//	respond.Either(e, respond.EitherMap[*ValidationErr, *User]{
//	    Right: func(u *User) respond.Response { return respond.Created(u) },
//	    Left:  func(v *ValidationErr) respond.Response { return respond.Status(http.StatusBadRequest, v) },
//	})
//
// ResultAsync, OptionAsync and EitherAsync accept an outcome.Future and
// return a future descriptor computed with the same policy.
//
// Writing a descriptor to the wire is left to a Writer, which negotiates
// the encoder from the Accept header and renders error bodies as RFC 9457
// problem details. HandlerFunc and AsyncHandlerFunc adapt descriptor
// returning functions to http.Handler.
package respond
