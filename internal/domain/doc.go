// Package domain models daily weather readings and the reports derived from them.
//
// # Data Source
//
// Readings arrive as a CSV file with one header line followed by one line per
// day:
//
//	date,min,max
//	2021-07-05,39,47
//	2021-07-06,41,52
//
// The date column is kept verbatim. Temperatures are whole degrees Fahrenheit.
// Blank lines are ignored. Parsing lives in the csvfile adapter; everything in
// this package operates on already-typed values.
//
// # Conversions
//
// Fahrenheit to Celsius uses the fixed factor 0.5556 rather than 5/9:
//
//	C = round1((F - 32) * 0.5556)
//
// round1 rounds to one decimal place, ties to even, on the exact binary value.
// 212°F therefore reports as 100.0°C (180 * 0.5556 = 100.008).
//
// Temperatures render with the value's natural text followed by "°C"
// (U+00B0 DEGREE SIGN). Floats always keep a decimal point ("5.0°C"), integers
// never do ("0°C").
//
// Dates render as "Monday 02 January 2006", e.g. "2021-07-06" becomes
// "Tuesday 06 July 2021". A trailing time component is accepted and ignored.
//
// # Extremes
//
// [FindMin] and [FindMax] resolve ties to the last matching position. When two
// days share the lowest reading, the report names the later day.
package domain
