// Package clientversion reads the client platform and version from request
// headers and answers version-gating questions for the rest of the request.
//
// # Header table
//
// Every supported app/platform pair has a fixed version header, for example
// X-Zilly-Ios-Version for iOS clients of the Zilly app. The table is scanned
// in declaration order; when a request carries more than one of these headers
// the later table entry becomes the current client.
//
// # Request-scoped storage
//
// Parsed values live in a Store attached to the request context, so nothing
// is shared between requests:
//
//	store := clientversion.NewStore()
//	defer store.Clear()
//	clientversion.SetFromRequest(store, r)
//	ctx := clientversion.WithStore(r.Context(), store)
//
// # Gating
//
// Downstream code asks the current record:
//
//	client := clientversion.CurrentFromContext(ctx)
//	old, err := client.LessThan(clientversion.PlatformIOS, "2.0.0")
//	if err != nil {
//	    // client sent a malformed version
//	}
//	if old {
//	    // hide the feature
//	}
//
// A blank record (no version header was sent) answers false to every
// ordering question. It is a conservative default, not a real ordering.
//
// # Friendly labels
//
// FriendlyLabel renders "Zilly Ios 1.2.3" and ParseFriendlyLabel turns such a
// label back into a record, returning the blank record for anything that is
// not exactly app, platform and version.
package clientversion
