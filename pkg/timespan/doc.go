// Package timespan models a signed duration measured in seconds and converts
// it to and from text through placeholder templates.
//
// # Placeholders
//
//	%h  hours, at least two digits ("05", "8761")
//	%i  minutes 0-59, exactly two digits
//	%s  whole seconds 0-59, exactly two digits
//	%r  "-" for negative spans, nothing otherwise
//	%R  "-" for negative spans, "+" otherwise
//
// Everything else is literal. Unknown sequences such as "%x" and a trailing
// "%" are copied verbatim when rendering. A template needs at least one
// placeholder to parse anything.
//
// # Rendering and parsing
//
//	ts := timespan.New(1, 5, 0)
//	ts.Format("%h:%i:%s")                       // "01:05:00"
//	timespan.FromSeconds(-15).Format("%R%s s")  // "-15 s"
//
//	ts, err := timespan.Parse("%R%s seconds", "+15 seconds") // 15s
//	var invalid *timespan.InvalidFormatError
//	if errors.As(err, &invalid) {
//		// invalid.Value, invalid.Format
//	}
//
// Rendering truncates to whole seconds; the stored quantity keeps its
// fraction. Parse is the inverse of Format for templates made of
// placeholders and literal separators.
//
// # Arithmetic
//
// Mutators work in place and return the receiver:
//
//	ts := timespan.New(0, 0, 0).Add(1, 1, 59) // 3719 seconds
//	ts.Sum(timespan.FromSeconds(1)).Negate()
//
// SetMinutes and SetHours fold the current seconds back in: SetMinutes(v) is
// SetTime(0, v, current). Use SetTime or SetSeconds to replace the value.
//
// # Collaborators
//
// FromInstantDiff takes any value with a Unix() method, such as time.Time.
// AddFromString and CreateFromString delegate the expression to a
// RelativeResolver; timex.Resolver is used when none is given.
//
// Package-level Format and Parse use a shared Engine whose compiled
// templates are cached; NewEngine and SetDefaultEngine configure it.
package timespan
