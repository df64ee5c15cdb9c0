// Package outcome provides closed outcome types for handler results:
// Result (success or failure), Option (present or absent), and Either
// (left or right), plus Future for values that resolve later.
//
// Each type is a tagged union. Exactly one case is live and the Match
// functions run exactly one branch:
//
//	res := outcome.From(store.Get(id))
//	msg := outcome.MatchResult(res,
//	    func(u User) string { return u.Name },
//	    func(err error) string { return err.Error() },
//	)
//
// Void is the "no value" payload. A Result[Void] carries success without
// data, which HTTP layers render as 204 No Content.
package outcome
