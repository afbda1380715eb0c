// Package version parses and orders the loosely formatted version strings
// that clients send in their version headers.
//
// # Parsing
//
// Parse accepts dotted numeric versions with any number of components and
// an optional "v" prefix or pre-release suffix:
//
//	v, err := version.Parse("v1.2.3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3
//
// Strings that do not parse get one fix-up attempt in which letters glued to
// a digit are removed, so "V1.2.3" and "ios2.0" still parse. When the fix-up
// also fails, a *ParseError carrying both the original and the fixed-up string
// is returned. An empty string is not an error: it yields the blank Version.
//
// # Ordering
//
// Components compare numerically left to right and missing components count
// as zero, so "1.2.3" < "1.2.3.1" and "1.2.3" == "1.2.3.0". LessThan and
// LessThanOrEqual are false whenever either side is blank.
//
// # Requirements
//
// ParseRequirement understands the usual dependency-constraint operators,
// including the pessimistic "~>":
//
//	req := version.MustParseRequirement("~> 2.1")
//	req.Check(version.MustParse("2.9.0")) // true
//	req.Check(version.MustParse("3.0.0")) // false
package version
