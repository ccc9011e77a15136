// Package formatter implements the formatter registry described by
// the logging core: for every distinct (template, argument-type-tuple)
// pair seen at a call site, exactly one Handle exists for the life of
// the process. A Handle knows how to Encode a call's arguments into a
// packed byte payload on the producer side, and how to Format that
// same payload back into a rendered text line on the drain side.
//
// Arguments are represented as Arg, a small tagged union (the same
// shape as a structured-logging Field, but positional rather than
// keyed) so that int/float/bool/string arguments never need to be
// boxed into an interface{} on the hot path.
//
// Handles are obtained via Get, which interns on the combination of
// an effective template (call-site identifier + ":" + the user's
// template) and the argument kinds. Two calls to Get with identical
// effective templates and kinds return the identical *Handle.
package formatter
