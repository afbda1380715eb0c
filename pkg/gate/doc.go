// Package gate turns client versions into feature decisions.
//
// A gates document lists features and, per platform, the version
// requirement a client must satisfy:
//
//	features:
//	  - name: new-checkout
//	    description: redesigned checkout flow
//	    default: false
//	    platforms:
//	      ios: ">= 2.0.0"
//	      android: "~> 3.1"
//
// Clients without a version, or on a platform the feature does not list,
// get the feature default. A client whose version cannot be parsed is
// denied.
//
//	set, err := gate.Load("gates.yaml")
//	if err != nil {
//	    return err
//	}
//	enabled := set.Enabled(clientversion.CurrentFromContext(ctx))
package gate
